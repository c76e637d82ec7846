// Code generated by ent, DO NOT EDIT.

package command

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/headspace-sh/headspace/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v int) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldAgentID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldCompletedAt, v))
}

// Instruction applies equality check predicate on the "instruction" field. It's identical to InstructionEQ.
func Instruction(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldInstruction, v))
}

// CompletionSummary applies equality check predicate on the "completion_summary" field. It's identical to CompletionSummaryEQ.
func CompletionSummary(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldCompletionSummary, v))
}

// FullCommand applies equality check predicate on the "full_command" field. It's identical to FullCommandEQ.
func FullCommand(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldFullCommand, v))
}

// FullOutput applies equality check predicate on the "full_output" field. It's identical to FullOutputEQ.
func FullOutput(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldFullOutput, v))
}

// PlanFilePath applies equality check predicate on the "plan_file_path" field. It's identical to PlanFilePathEQ.
func PlanFilePath(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldPlanFilePath, v))
}

// PlanContent applies equality check predicate on the "plan_content" field. It's identical to PlanContentEQ.
func PlanContent(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldPlanContent, v))
}

// PlanApprovedAt applies equality check predicate on the "plan_approved_at" field. It's identical to PlanApprovedAtEQ.
func PlanApprovedAt(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldPlanApprovedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v int) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v int) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...int) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...int) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldAgentID, vs...))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldState, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Command {
	return predicate.Command(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Command {
	return predicate.Command(sql.FieldNotNull(FieldCompletedAt))
}

// InstructionEQ applies the EQ predicate on the "instruction" field.
func InstructionEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldInstruction, v))
}

// InstructionNEQ applies the NEQ predicate on the "instruction" field.
func InstructionNEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldInstruction, v))
}

// InstructionIn applies the In predicate on the "instruction" field.
func InstructionIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldInstruction, vs...))
}

// InstructionNotIn applies the NotIn predicate on the "instruction" field.
func InstructionNotIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldInstruction, vs...))
}

// InstructionGT applies the GT predicate on the "instruction" field.
func InstructionGT(v string) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldInstruction, v))
}

// InstructionGTE applies the GTE predicate on the "instruction" field.
func InstructionGTE(v string) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldInstruction, v))
}

// InstructionLT applies the LT predicate on the "instruction" field.
func InstructionLT(v string) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldInstruction, v))
}

// InstructionLTE applies the LTE predicate on the "instruction" field.
func InstructionLTE(v string) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldInstruction, v))
}

// InstructionContains applies the Contains predicate on the "instruction" field.
func InstructionContains(v string) predicate.Command {
	return predicate.Command(sql.FieldContains(FieldInstruction, v))
}

// InstructionHasPrefix applies the HasPrefix predicate on the "instruction" field.
func InstructionHasPrefix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasPrefix(FieldInstruction, v))
}

// InstructionHasSuffix applies the HasSuffix predicate on the "instruction" field.
func InstructionHasSuffix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasSuffix(FieldInstruction, v))
}

// InstructionIsNil applies the IsNil predicate on the "instruction" field.
func InstructionIsNil() predicate.Command {
	return predicate.Command(sql.FieldIsNull(FieldInstruction))
}

// InstructionNotNil applies the NotNil predicate on the "instruction" field.
func InstructionNotNil() predicate.Command {
	return predicate.Command(sql.FieldNotNull(FieldInstruction))
}

// InstructionEqualFold applies the EqualFold predicate on the "instruction" field.
func InstructionEqualFold(v string) predicate.Command {
	return predicate.Command(sql.FieldEqualFold(FieldInstruction, v))
}

// InstructionContainsFold applies the ContainsFold predicate on the "instruction" field.
func InstructionContainsFold(v string) predicate.Command {
	return predicate.Command(sql.FieldContainsFold(FieldInstruction, v))
}

// CompletionSummaryEQ applies the EQ predicate on the "completion_summary" field.
func CompletionSummaryEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldCompletionSummary, v))
}

// CompletionSummaryNEQ applies the NEQ predicate on the "completion_summary" field.
func CompletionSummaryNEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldCompletionSummary, v))
}

// CompletionSummaryIn applies the In predicate on the "completion_summary" field.
func CompletionSummaryIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldCompletionSummary, vs...))
}

// CompletionSummaryNotIn applies the NotIn predicate on the "completion_summary" field.
func CompletionSummaryNotIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldCompletionSummary, vs...))
}

// CompletionSummaryGT applies the GT predicate on the "completion_summary" field.
func CompletionSummaryGT(v string) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldCompletionSummary, v))
}

// CompletionSummaryGTE applies the GTE predicate on the "completion_summary" field.
func CompletionSummaryGTE(v string) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldCompletionSummary, v))
}

// CompletionSummaryLT applies the LT predicate on the "completion_summary" field.
func CompletionSummaryLT(v string) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldCompletionSummary, v))
}

// CompletionSummaryLTE applies the LTE predicate on the "completion_summary" field.
func CompletionSummaryLTE(v string) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldCompletionSummary, v))
}

// CompletionSummaryContains applies the Contains predicate on the "completion_summary" field.
func CompletionSummaryContains(v string) predicate.Command {
	return predicate.Command(sql.FieldContains(FieldCompletionSummary, v))
}

// CompletionSummaryHasPrefix applies the HasPrefix predicate on the "completion_summary" field.
func CompletionSummaryHasPrefix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasPrefix(FieldCompletionSummary, v))
}

// CompletionSummaryHasSuffix applies the HasSuffix predicate on the "completion_summary" field.
func CompletionSummaryHasSuffix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasSuffix(FieldCompletionSummary, v))
}

// CompletionSummaryIsNil applies the IsNil predicate on the "completion_summary" field.
func CompletionSummaryIsNil() predicate.Command {
	return predicate.Command(sql.FieldIsNull(FieldCompletionSummary))
}

// CompletionSummaryNotNil applies the NotNil predicate on the "completion_summary" field.
func CompletionSummaryNotNil() predicate.Command {
	return predicate.Command(sql.FieldNotNull(FieldCompletionSummary))
}

// CompletionSummaryEqualFold applies the EqualFold predicate on the "completion_summary" field.
func CompletionSummaryEqualFold(v string) predicate.Command {
	return predicate.Command(sql.FieldEqualFold(FieldCompletionSummary, v))
}

// CompletionSummaryContainsFold applies the ContainsFold predicate on the "completion_summary" field.
func CompletionSummaryContainsFold(v string) predicate.Command {
	return predicate.Command(sql.FieldContainsFold(FieldCompletionSummary, v))
}

// FullCommandEQ applies the EQ predicate on the "full_command" field.
func FullCommandEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldFullCommand, v))
}

// FullCommandNEQ applies the NEQ predicate on the "full_command" field.
func FullCommandNEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldFullCommand, v))
}

// FullCommandIn applies the In predicate on the "full_command" field.
func FullCommandIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldFullCommand, vs...))
}

// FullCommandNotIn applies the NotIn predicate on the "full_command" field.
func FullCommandNotIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldFullCommand, vs...))
}

// FullCommandGT applies the GT predicate on the "full_command" field.
func FullCommandGT(v string) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldFullCommand, v))
}

// FullCommandGTE applies the GTE predicate on the "full_command" field.
func FullCommandGTE(v string) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldFullCommand, v))
}

// FullCommandLT applies the LT predicate on the "full_command" field.
func FullCommandLT(v string) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldFullCommand, v))
}

// FullCommandLTE applies the LTE predicate on the "full_command" field.
func FullCommandLTE(v string) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldFullCommand, v))
}

// FullCommandContains applies the Contains predicate on the "full_command" field.
func FullCommandContains(v string) predicate.Command {
	return predicate.Command(sql.FieldContains(FieldFullCommand, v))
}

// FullCommandHasPrefix applies the HasPrefix predicate on the "full_command" field.
func FullCommandHasPrefix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasPrefix(FieldFullCommand, v))
}

// FullCommandHasSuffix applies the HasSuffix predicate on the "full_command" field.
func FullCommandHasSuffix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasSuffix(FieldFullCommand, v))
}

// FullCommandIsNil applies the IsNil predicate on the "full_command" field.
func FullCommandIsNil() predicate.Command {
	return predicate.Command(sql.FieldIsNull(FieldFullCommand))
}

// FullCommandNotNil applies the NotNil predicate on the "full_command" field.
func FullCommandNotNil() predicate.Command {
	return predicate.Command(sql.FieldNotNull(FieldFullCommand))
}

// FullCommandEqualFold applies the EqualFold predicate on the "full_command" field.
func FullCommandEqualFold(v string) predicate.Command {
	return predicate.Command(sql.FieldEqualFold(FieldFullCommand, v))
}

// FullCommandContainsFold applies the ContainsFold predicate on the "full_command" field.
func FullCommandContainsFold(v string) predicate.Command {
	return predicate.Command(sql.FieldContainsFold(FieldFullCommand, v))
}

// FullOutputEQ applies the EQ predicate on the "full_output" field.
func FullOutputEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldFullOutput, v))
}

// FullOutputNEQ applies the NEQ predicate on the "full_output" field.
func FullOutputNEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldFullOutput, v))
}

// FullOutputIn applies the In predicate on the "full_output" field.
func FullOutputIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldFullOutput, vs...))
}

// FullOutputNotIn applies the NotIn predicate on the "full_output" field.
func FullOutputNotIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldFullOutput, vs...))
}

// FullOutputGT applies the GT predicate on the "full_output" field.
func FullOutputGT(v string) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldFullOutput, v))
}

// FullOutputGTE applies the GTE predicate on the "full_output" field.
func FullOutputGTE(v string) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldFullOutput, v))
}

// FullOutputLT applies the LT predicate on the "full_output" field.
func FullOutputLT(v string) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldFullOutput, v))
}

// FullOutputLTE applies the LTE predicate on the "full_output" field.
func FullOutputLTE(v string) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldFullOutput, v))
}

// FullOutputContains applies the Contains predicate on the "full_output" field.
func FullOutputContains(v string) predicate.Command {
	return predicate.Command(sql.FieldContains(FieldFullOutput, v))
}

// FullOutputHasPrefix applies the HasPrefix predicate on the "full_output" field.
func FullOutputHasPrefix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasPrefix(FieldFullOutput, v))
}

// FullOutputHasSuffix applies the HasSuffix predicate on the "full_output" field.
func FullOutputHasSuffix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasSuffix(FieldFullOutput, v))
}

// FullOutputIsNil applies the IsNil predicate on the "full_output" field.
func FullOutputIsNil() predicate.Command {
	return predicate.Command(sql.FieldIsNull(FieldFullOutput))
}

// FullOutputNotNil applies the NotNil predicate on the "full_output" field.
func FullOutputNotNil() predicate.Command {
	return predicate.Command(sql.FieldNotNull(FieldFullOutput))
}

// FullOutputEqualFold applies the EqualFold predicate on the "full_output" field.
func FullOutputEqualFold(v string) predicate.Command {
	return predicate.Command(sql.FieldEqualFold(FieldFullOutput, v))
}

// FullOutputContainsFold applies the ContainsFold predicate on the "full_output" field.
func FullOutputContainsFold(v string) predicate.Command {
	return predicate.Command(sql.FieldContainsFold(FieldFullOutput, v))
}

// PlanFilePathEQ applies the EQ predicate on the "plan_file_path" field.
func PlanFilePathEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldPlanFilePath, v))
}

// PlanFilePathNEQ applies the NEQ predicate on the "plan_file_path" field.
func PlanFilePathNEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldPlanFilePath, v))
}

// PlanFilePathIn applies the In predicate on the "plan_file_path" field.
func PlanFilePathIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldPlanFilePath, vs...))
}

// PlanFilePathNotIn applies the NotIn predicate on the "plan_file_path" field.
func PlanFilePathNotIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldPlanFilePath, vs...))
}

// PlanFilePathGT applies the GT predicate on the "plan_file_path" field.
func PlanFilePathGT(v string) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldPlanFilePath, v))
}

// PlanFilePathGTE applies the GTE predicate on the "plan_file_path" field.
func PlanFilePathGTE(v string) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldPlanFilePath, v))
}

// PlanFilePathLT applies the LT predicate on the "plan_file_path" field.
func PlanFilePathLT(v string) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldPlanFilePath, v))
}

// PlanFilePathLTE applies the LTE predicate on the "plan_file_path" field.
func PlanFilePathLTE(v string) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldPlanFilePath, v))
}

// PlanFilePathContains applies the Contains predicate on the "plan_file_path" field.
func PlanFilePathContains(v string) predicate.Command {
	return predicate.Command(sql.FieldContains(FieldPlanFilePath, v))
}

// PlanFilePathHasPrefix applies the HasPrefix predicate on the "plan_file_path" field.
func PlanFilePathHasPrefix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasPrefix(FieldPlanFilePath, v))
}

// PlanFilePathHasSuffix applies the HasSuffix predicate on the "plan_file_path" field.
func PlanFilePathHasSuffix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasSuffix(FieldPlanFilePath, v))
}

// PlanFilePathIsNil applies the IsNil predicate on the "plan_file_path" field.
func PlanFilePathIsNil() predicate.Command {
	return predicate.Command(sql.FieldIsNull(FieldPlanFilePath))
}

// PlanFilePathNotNil applies the NotNil predicate on the "plan_file_path" field.
func PlanFilePathNotNil() predicate.Command {
	return predicate.Command(sql.FieldNotNull(FieldPlanFilePath))
}

// PlanFilePathEqualFold applies the EqualFold predicate on the "plan_file_path" field.
func PlanFilePathEqualFold(v string) predicate.Command {
	return predicate.Command(sql.FieldEqualFold(FieldPlanFilePath, v))
}

// PlanFilePathContainsFold applies the ContainsFold predicate on the "plan_file_path" field.
func PlanFilePathContainsFold(v string) predicate.Command {
	return predicate.Command(sql.FieldContainsFold(FieldPlanFilePath, v))
}

// PlanContentEQ applies the EQ predicate on the "plan_content" field.
func PlanContentEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldPlanContent, v))
}

// PlanContentNEQ applies the NEQ predicate on the "plan_content" field.
func PlanContentNEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldPlanContent, v))
}

// PlanContentIn applies the In predicate on the "plan_content" field.
func PlanContentIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldPlanContent, vs...))
}

// PlanContentNotIn applies the NotIn predicate on the "plan_content" field.
func PlanContentNotIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldPlanContent, vs...))
}

// PlanContentGT applies the GT predicate on the "plan_content" field.
func PlanContentGT(v string) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldPlanContent, v))
}

// PlanContentGTE applies the GTE predicate on the "plan_content" field.
func PlanContentGTE(v string) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldPlanContent, v))
}

// PlanContentLT applies the LT predicate on the "plan_content" field.
func PlanContentLT(v string) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldPlanContent, v))
}

// PlanContentLTE applies the LTE predicate on the "plan_content" field.
func PlanContentLTE(v string) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldPlanContent, v))
}

// PlanContentContains applies the Contains predicate on the "plan_content" field.
func PlanContentContains(v string) predicate.Command {
	return predicate.Command(sql.FieldContains(FieldPlanContent, v))
}

// PlanContentHasPrefix applies the HasPrefix predicate on the "plan_content" field.
func PlanContentHasPrefix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasPrefix(FieldPlanContent, v))
}

// PlanContentHasSuffix applies the HasSuffix predicate on the "plan_content" field.
func PlanContentHasSuffix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasSuffix(FieldPlanContent, v))
}

// PlanContentIsNil applies the IsNil predicate on the "plan_content" field.
func PlanContentIsNil() predicate.Command {
	return predicate.Command(sql.FieldIsNull(FieldPlanContent))
}

// PlanContentNotNil applies the NotNil predicate on the "plan_content" field.
func PlanContentNotNil() predicate.Command {
	return predicate.Command(sql.FieldNotNull(FieldPlanContent))
}

// PlanContentEqualFold applies the EqualFold predicate on the "plan_content" field.
func PlanContentEqualFold(v string) predicate.Command {
	return predicate.Command(sql.FieldEqualFold(FieldPlanContent, v))
}

// PlanContentContainsFold applies the ContainsFold predicate on the "plan_content" field.
func PlanContentContainsFold(v string) predicate.Command {
	return predicate.Command(sql.FieldContainsFold(FieldPlanContent, v))
}

// PlanApprovedAtEQ applies the EQ predicate on the "plan_approved_at" field.
func PlanApprovedAtEQ(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldPlanApprovedAt, v))
}

// PlanApprovedAtNEQ applies the NEQ predicate on the "plan_approved_at" field.
func PlanApprovedAtNEQ(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldPlanApprovedAt, v))
}

// PlanApprovedAtIn applies the In predicate on the "plan_approved_at" field.
func PlanApprovedAtIn(vs ...time.Time) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldPlanApprovedAt, vs...))
}

// PlanApprovedAtNotIn applies the NotIn predicate on the "plan_approved_at" field.
func PlanApprovedAtNotIn(vs ...time.Time) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldPlanApprovedAt, vs...))
}

// PlanApprovedAtGT applies the GT predicate on the "plan_approved_at" field.
func PlanApprovedAtGT(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldPlanApprovedAt, v))
}

// PlanApprovedAtGTE applies the GTE predicate on the "plan_approved_at" field.
func PlanApprovedAtGTE(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldPlanApprovedAt, v))
}

// PlanApprovedAtLT applies the LT predicate on the "plan_approved_at" field.
func PlanApprovedAtLT(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldPlanApprovedAt, v))
}

// PlanApprovedAtLTE applies the LTE predicate on the "plan_approved_at" field.
func PlanApprovedAtLTE(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldPlanApprovedAt, v))
}

// PlanApprovedAtIsNil applies the IsNil predicate on the "plan_approved_at" field.
func PlanApprovedAtIsNil() predicate.Command {
	return predicate.Command(sql.FieldIsNull(FieldPlanApprovedAt))
}

// PlanApprovedAtNotNil applies the NotNil predicate on the "plan_approved_at" field.
func PlanApprovedAtNotNil() predicate.Command {
	return predicate.Command(sql.FieldNotNull(FieldPlanApprovedAt))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.Command {
	return predicate.Command(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.Command {
	return predicate.Command(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTurns applies the HasEdge predicate on the "turns" edge.
func HasTurns() predicate.Command {
	return predicate.Command(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TurnsTable, TurnsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTurnsWith applies the HasEdge predicate on the "turns" edge with a given conditions (other predicates).
func HasTurnsWith(preds ...predicate.Turn) predicate.Command {
	return predicate.Command(func(s *sql.Selector) {
		step := newTurnsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Command {
	return predicate.Command(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Command {
	return predicate.Command(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInferenceCalls applies the HasEdge predicate on the "inference_calls" edge.
func HasInferenceCalls() predicate.Command {
	return predicate.Command(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InferenceCallsTable, InferenceCallsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInferenceCallsWith applies the HasEdge predicate on the "inference_calls" edge with a given conditions (other predicates).
func HasInferenceCallsWith(preds ...predicate.InferenceCall) predicate.Command {
	return predicate.Command(func(s *sql.Selector) {
		step := newInferenceCallsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Command) predicate.Command {
	return predicate.Command(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Command) predicate.Command {
	return predicate.Command(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Command) predicate.Command {
	return predicate.Command(sql.NotPredicates(p))
}
