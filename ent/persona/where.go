// Code generated by ent, DO NOT EDIT.

package persona

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/headspace-sh/headspace/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldID, id))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldSlug, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldDescription, v))
}

// SkillPath applies equality check predicate on the "skill_path" field. It's identical to SkillPathEQ.
func SkillPath(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldSkillPath, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldCreatedAt, v))
}

// ArchivedAt applies equality check predicate on the "archived_at" field. It's identical to ArchivedAtEQ.
func ArchivedAt(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldArchivedAt, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContainsFold(FieldSlug, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Persona {
	return predicate.Persona(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Persona {
	return predicate.Persona(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldStatus, vs...))
}

// SkillPathEQ applies the EQ predicate on the "skill_path" field.
func SkillPathEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldSkillPath, v))
}

// SkillPathNEQ applies the NEQ predicate on the "skill_path" field.
func SkillPathNEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldSkillPath, v))
}

// SkillPathIn applies the In predicate on the "skill_path" field.
func SkillPathIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldSkillPath, vs...))
}

// SkillPathNotIn applies the NotIn predicate on the "skill_path" field.
func SkillPathNotIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldSkillPath, vs...))
}

// SkillPathGT applies the GT predicate on the "skill_path" field.
func SkillPathGT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldSkillPath, v))
}

// SkillPathGTE applies the GTE predicate on the "skill_path" field.
func SkillPathGTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldSkillPath, v))
}

// SkillPathLT applies the LT predicate on the "skill_path" field.
func SkillPathLT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldSkillPath, v))
}

// SkillPathLTE applies the LTE predicate on the "skill_path" field.
func SkillPathLTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldSkillPath, v))
}

// SkillPathContains applies the Contains predicate on the "skill_path" field.
func SkillPathContains(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContains(FieldSkillPath, v))
}

// SkillPathHasPrefix applies the HasPrefix predicate on the "skill_path" field.
func SkillPathHasPrefix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasPrefix(FieldSkillPath, v))
}

// SkillPathHasSuffix applies the HasSuffix predicate on the "skill_path" field.
func SkillPathHasSuffix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasSuffix(FieldSkillPath, v))
}

// SkillPathIsNil applies the IsNil predicate on the "skill_path" field.
func SkillPathIsNil() predicate.Persona {
	return predicate.Persona(sql.FieldIsNull(FieldSkillPath))
}

// SkillPathNotNil applies the NotNil predicate on the "skill_path" field.
func SkillPathNotNil() predicate.Persona {
	return predicate.Persona(sql.FieldNotNull(FieldSkillPath))
}

// SkillPathEqualFold applies the EqualFold predicate on the "skill_path" field.
func SkillPathEqualFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEqualFold(FieldSkillPath, v))
}

// SkillPathContainsFold applies the ContainsFold predicate on the "skill_path" field.
func SkillPathContainsFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContainsFold(FieldSkillPath, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldCreatedAt, v))
}

// ArchivedAtEQ applies the EQ predicate on the "archived_at" field.
func ArchivedAtEQ(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldArchivedAt, v))
}

// ArchivedAtNEQ applies the NEQ predicate on the "archived_at" field.
func ArchivedAtNEQ(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldArchivedAt, v))
}

// ArchivedAtIn applies the In predicate on the "archived_at" field.
func ArchivedAtIn(vs ...time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldArchivedAt, vs...))
}

// ArchivedAtNotIn applies the NotIn predicate on the "archived_at" field.
func ArchivedAtNotIn(vs ...time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldArchivedAt, vs...))
}

// ArchivedAtGT applies the GT predicate on the "archived_at" field.
func ArchivedAtGT(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldArchivedAt, v))
}

// ArchivedAtGTE applies the GTE predicate on the "archived_at" field.
func ArchivedAtGTE(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldArchivedAt, v))
}

// ArchivedAtLT applies the LT predicate on the "archived_at" field.
func ArchivedAtLT(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldArchivedAt, v))
}

// ArchivedAtLTE applies the LTE predicate on the "archived_at" field.
func ArchivedAtLTE(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldArchivedAt, v))
}

// ArchivedAtIsNil applies the IsNil predicate on the "archived_at" field.
func ArchivedAtIsNil() predicate.Persona {
	return predicate.Persona(sql.FieldIsNull(FieldArchivedAt))
}

// ArchivedAtNotNil applies the NotNil predicate on the "archived_at" field.
func ArchivedAtNotNil() predicate.Persona {
	return predicate.Persona(sql.FieldNotNull(FieldArchivedAt))
}

// HasRole applies the HasEdge predicate on the "role" edge.
func HasRole() predicate.Persona {
	return predicate.Persona(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RoleTable, RoleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoleWith applies the HasEdge predicate on the "role" edge with a given conditions (other predicates).
func HasRoleWith(preds ...predicate.Role) predicate.Persona {
	return predicate.Persona(func(s *sql.Selector) {
		step := newRoleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgents applies the HasEdge predicate on the "agents" edge.
func HasAgents() predicate.Persona {
	return predicate.Persona(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentsTable, AgentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentsWith applies the HasEdge predicate on the "agents" edge with a given conditions (other predicates).
func HasAgentsWith(preds ...predicate.Agent) predicate.Persona {
	return predicate.Persona(func(s *sql.Selector) {
		step := newAgentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Persona) predicate.Persona {
	return predicate.Persona(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Persona) predicate.Persona {
	return predicate.Persona(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Persona) predicate.Persona {
	return predicate.Persona(sql.NotPredicates(p))
}
