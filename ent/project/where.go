// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/headspace-sh/headspace/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldSlug, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// Path applies equality check predicate on the "path" field. It's identical to PathEQ.
func Path(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldPath, v))
}

// GitOriginURL applies equality check predicate on the "git_origin_url" field. It's identical to GitOriginURLEQ.
func GitOriginURL(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldGitOriginURL, v))
}

// GitBranch applies equality check predicate on the "git_branch" field. It's identical to GitBranchEQ.
func GitBranch(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldGitBranch, v))
}

// InferencePaused applies equality check predicate on the "inference_paused" field. It's identical to InferencePausedEQ.
func InferencePaused(v bool) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldInferencePaused, v))
}

// InferencePausedReason applies equality check predicate on the "inference_paused_reason" field. It's identical to InferencePausedReasonEQ.
func InferencePausedReason(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldInferencePausedReason, v))
}

// InferencePausedAt applies equality check predicate on the "inference_paused_at" field. It's identical to InferencePausedAtEQ.
func InferencePausedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldInferencePausedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldSlug, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldName, v))
}

// PathEQ applies the EQ predicate on the "path" field.
func PathEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldPath, v))
}

// PathNEQ applies the NEQ predicate on the "path" field.
func PathNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldPath, v))
}

// PathIn applies the In predicate on the "path" field.
func PathIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldPath, vs...))
}

// PathNotIn applies the NotIn predicate on the "path" field.
func PathNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldPath, vs...))
}

// PathGT applies the GT predicate on the "path" field.
func PathGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldPath, v))
}

// PathGTE applies the GTE predicate on the "path" field.
func PathGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldPath, v))
}

// PathLT applies the LT predicate on the "path" field.
func PathLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldPath, v))
}

// PathLTE applies the LTE predicate on the "path" field.
func PathLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldPath, v))
}

// PathContains applies the Contains predicate on the "path" field.
func PathContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldPath, v))
}

// PathHasPrefix applies the HasPrefix predicate on the "path" field.
func PathHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldPath, v))
}

// PathHasSuffix applies the HasSuffix predicate on the "path" field.
func PathHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldPath, v))
}

// PathEqualFold applies the EqualFold predicate on the "path" field.
func PathEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldPath, v))
}

// PathContainsFold applies the ContainsFold predicate on the "path" field.
func PathContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldPath, v))
}

// GitOriginURLEQ applies the EQ predicate on the "git_origin_url" field.
func GitOriginURLEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldGitOriginURL, v))
}

// GitOriginURLNEQ applies the NEQ predicate on the "git_origin_url" field.
func GitOriginURLNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldGitOriginURL, v))
}

// GitOriginURLIn applies the In predicate on the "git_origin_url" field.
func GitOriginURLIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldGitOriginURL, vs...))
}

// GitOriginURLNotIn applies the NotIn predicate on the "git_origin_url" field.
func GitOriginURLNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldGitOriginURL, vs...))
}

// GitOriginURLGT applies the GT predicate on the "git_origin_url" field.
func GitOriginURLGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldGitOriginURL, v))
}

// GitOriginURLGTE applies the GTE predicate on the "git_origin_url" field.
func GitOriginURLGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldGitOriginURL, v))
}

// GitOriginURLLT applies the LT predicate on the "git_origin_url" field.
func GitOriginURLLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldGitOriginURL, v))
}

// GitOriginURLLTE applies the LTE predicate on the "git_origin_url" field.
func GitOriginURLLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldGitOriginURL, v))
}

// GitOriginURLContains applies the Contains predicate on the "git_origin_url" field.
func GitOriginURLContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldGitOriginURL, v))
}

// GitOriginURLHasPrefix applies the HasPrefix predicate on the "git_origin_url" field.
func GitOriginURLHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldGitOriginURL, v))
}

// GitOriginURLHasSuffix applies the HasSuffix predicate on the "git_origin_url" field.
func GitOriginURLHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldGitOriginURL, v))
}

// GitOriginURLIsNil applies the IsNil predicate on the "git_origin_url" field.
func GitOriginURLIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldGitOriginURL))
}

// GitOriginURLNotNil applies the NotNil predicate on the "git_origin_url" field.
func GitOriginURLNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldGitOriginURL))
}

// GitOriginURLEqualFold applies the EqualFold predicate on the "git_origin_url" field.
func GitOriginURLEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldGitOriginURL, v))
}

// GitOriginURLContainsFold applies the ContainsFold predicate on the "git_origin_url" field.
func GitOriginURLContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldGitOriginURL, v))
}

// GitBranchEQ applies the EQ predicate on the "git_branch" field.
func GitBranchEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldGitBranch, v))
}

// GitBranchNEQ applies the NEQ predicate on the "git_branch" field.
func GitBranchNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldGitBranch, v))
}

// GitBranchIn applies the In predicate on the "git_branch" field.
func GitBranchIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldGitBranch, vs...))
}

// GitBranchNotIn applies the NotIn predicate on the "git_branch" field.
func GitBranchNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldGitBranch, vs...))
}

// GitBranchGT applies the GT predicate on the "git_branch" field.
func GitBranchGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldGitBranch, v))
}

// GitBranchGTE applies the GTE predicate on the "git_branch" field.
func GitBranchGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldGitBranch, v))
}

// GitBranchLT applies the LT predicate on the "git_branch" field.
func GitBranchLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldGitBranch, v))
}

// GitBranchLTE applies the LTE predicate on the "git_branch" field.
func GitBranchLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldGitBranch, v))
}

// GitBranchContains applies the Contains predicate on the "git_branch" field.
func GitBranchContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldGitBranch, v))
}

// GitBranchHasPrefix applies the HasPrefix predicate on the "git_branch" field.
func GitBranchHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldGitBranch, v))
}

// GitBranchHasSuffix applies the HasSuffix predicate on the "git_branch" field.
func GitBranchHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldGitBranch, v))
}

// GitBranchIsNil applies the IsNil predicate on the "git_branch" field.
func GitBranchIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldGitBranch))
}

// GitBranchNotNil applies the NotNil predicate on the "git_branch" field.
func GitBranchNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldGitBranch))
}

// GitBranchEqualFold applies the EqualFold predicate on the "git_branch" field.
func GitBranchEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldGitBranch, v))
}

// GitBranchContainsFold applies the ContainsFold predicate on the "git_branch" field.
func GitBranchContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldGitBranch, v))
}

// InferencePausedEQ applies the EQ predicate on the "inference_paused" field.
func InferencePausedEQ(v bool) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldInferencePaused, v))
}

// InferencePausedNEQ applies the NEQ predicate on the "inference_paused" field.
func InferencePausedNEQ(v bool) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldInferencePaused, v))
}

// InferencePausedReasonEQ applies the EQ predicate on the "inference_paused_reason" field.
func InferencePausedReasonEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldInferencePausedReason, v))
}

// InferencePausedReasonNEQ applies the NEQ predicate on the "inference_paused_reason" field.
func InferencePausedReasonNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldInferencePausedReason, v))
}

// InferencePausedReasonIn applies the In predicate on the "inference_paused_reason" field.
func InferencePausedReasonIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldInferencePausedReason, vs...))
}

// InferencePausedReasonNotIn applies the NotIn predicate on the "inference_paused_reason" field.
func InferencePausedReasonNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldInferencePausedReason, vs...))
}

// InferencePausedReasonGT applies the GT predicate on the "inference_paused_reason" field.
func InferencePausedReasonGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldInferencePausedReason, v))
}

// InferencePausedReasonGTE applies the GTE predicate on the "inference_paused_reason" field.
func InferencePausedReasonGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldInferencePausedReason, v))
}

// InferencePausedReasonLT applies the LT predicate on the "inference_paused_reason" field.
func InferencePausedReasonLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldInferencePausedReason, v))
}

// InferencePausedReasonLTE applies the LTE predicate on the "inference_paused_reason" field.
func InferencePausedReasonLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldInferencePausedReason, v))
}

// InferencePausedReasonContains applies the Contains predicate on the "inference_paused_reason" field.
func InferencePausedReasonContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldInferencePausedReason, v))
}

// InferencePausedReasonHasPrefix applies the HasPrefix predicate on the "inference_paused_reason" field.
func InferencePausedReasonHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldInferencePausedReason, v))
}

// InferencePausedReasonHasSuffix applies the HasSuffix predicate on the "inference_paused_reason" field.
func InferencePausedReasonHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldInferencePausedReason, v))
}

// InferencePausedReasonIsNil applies the IsNil predicate on the "inference_paused_reason" field.
func InferencePausedReasonIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldInferencePausedReason))
}

// InferencePausedReasonNotNil applies the NotNil predicate on the "inference_paused_reason" field.
func InferencePausedReasonNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldInferencePausedReason))
}

// InferencePausedReasonEqualFold applies the EqualFold predicate on the "inference_paused_reason" field.
func InferencePausedReasonEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldInferencePausedReason, v))
}

// InferencePausedReasonContainsFold applies the ContainsFold predicate on the "inference_paused_reason" field.
func InferencePausedReasonContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldInferencePausedReason, v))
}

// InferencePausedAtEQ applies the EQ predicate on the "inference_paused_at" field.
func InferencePausedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldInferencePausedAt, v))
}

// InferencePausedAtNEQ applies the NEQ predicate on the "inference_paused_at" field.
func InferencePausedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldInferencePausedAt, v))
}

// InferencePausedAtIn applies the In predicate on the "inference_paused_at" field.
func InferencePausedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldInferencePausedAt, vs...))
}

// InferencePausedAtNotIn applies the NotIn predicate on the "inference_paused_at" field.
func InferencePausedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldInferencePausedAt, vs...))
}

// InferencePausedAtGT applies the GT predicate on the "inference_paused_at" field.
func InferencePausedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldInferencePausedAt, v))
}

// InferencePausedAtGTE applies the GTE predicate on the "inference_paused_at" field.
func InferencePausedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldInferencePausedAt, v))
}

// InferencePausedAtLT applies the LT predicate on the "inference_paused_at" field.
func InferencePausedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldInferencePausedAt, v))
}

// InferencePausedAtLTE applies the LTE predicate on the "inference_paused_at" field.
func InferencePausedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldInferencePausedAt, v))
}

// InferencePausedAtIsNil applies the IsNil predicate on the "inference_paused_at" field.
func InferencePausedAtIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldInferencePausedAt))
}

// InferencePausedAtNotNil applies the NotNil predicate on the "inference_paused_at" field.
func InferencePausedAtNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldInferencePausedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAgents applies the HasEdge predicate on the "agents" edge.
func HasAgents() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentsTable, AgentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentsWith applies the HasEdge predicate on the "agents" edge with a given conditions (other predicates).
func HasAgentsWith(preds ...predicate.Agent) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newAgentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasActivityMetrics applies the HasEdge predicate on the "activity_metrics" edge.
func HasActivityMetrics() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ActivityMetricsTable, ActivityMetricsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActivityMetricsWith applies the HasEdge predicate on the "activity_metrics" edge with a given conditions (other predicates).
func HasActivityMetricsWith(preds ...predicate.ActivityMetric) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newActivityMetricsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInferenceCalls applies the HasEdge predicate on the "inference_calls" edge.
func HasInferenceCalls() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InferenceCallsTable, InferenceCallsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInferenceCallsWith applies the HasEdge predicate on the "inference_calls" edge with a given conditions (other predicates).
func HasInferenceCallsWith(preds ...predicate.InferenceCall) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newInferenceCallsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
