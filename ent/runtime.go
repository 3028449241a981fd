// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/devex-platform/crewd/ent/agentexecution"
	"github.com/devex-platform/crewd/ent/agentstate"
	"github.com/devex-platform/crewd/ent/promptversion"
	"github.com/devex-platform/crewd/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentexecutionFields := schema.AgentExecution{}.Fields()
	_ = agentexecutionFields
	// agentexecutionDescTokensUsed is the schema descriptor for tokens_used field.
	agentexecutionDescTokensUsed := agentexecutionFields[8].Descriptor()
	// agentexecution.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	agentexecution.DefaultTokensUsed = agentexecutionDescTokensUsed.Default.(int)
	agentstateFields := schema.AgentState{}.Fields()
	_ = agentstateFields
	// agentstateDescExecutionCount is the schema descriptor for execution_count field.
	agentstateDescExecutionCount := agentstateFields[4].Descriptor()
	// agentstate.DefaultExecutionCount holds the default value on creation for the execution_count field.
	agentstate.DefaultExecutionCount = agentstateDescExecutionCount.Default.(int)
	// agentstateDescErrorCount is the schema descriptor for error_count field.
	agentstateDescErrorCount := agentstateFields[5].Descriptor()
	// agentstate.DefaultErrorCount holds the default value on creation for the error_count field.
	agentstate.DefaultErrorCount = agentstateDescErrorCount.Default.(int)
	// agentstateDescIsActive is the schema descriptor for is_active field.
	agentstateDescIsActive := agentstateFields[9].Descriptor()
	// agentstate.DefaultIsActive holds the default value on creation for the is_active field.
	agentstate.DefaultIsActive = agentstateDescIsActive.Default.(bool)
	promptversionFields := schema.PromptVersion{}.Fields()
	_ = promptversionFields
	// promptversionDescUsageCount is the schema descriptor for usage_count field.
	promptversionDescUsageCount := promptversionFields[3].Descriptor()
	// promptversion.DefaultUsageCount holds the default value on creation for the usage_count field.
	promptversion.DefaultUsageCount = promptversionDescUsageCount.Default.(int)
	// promptversionDescSuccessRate is the schema descriptor for success_rate field.
	promptversionDescSuccessRate := promptversionFields[4].Descriptor()
	// promptversion.DefaultSuccessRate holds the default value on creation for the success_rate field.
	promptversion.DefaultSuccessRate = promptversionDescSuccessRate.Default.(float64)
	// promptversionDescAvgTime is the schema descriptor for avg_time field.
	promptversionDescAvgTime := promptversionFields[5].Descriptor()
	// promptversion.DefaultAvgTime holds the default value on creation for the avg_time field.
	promptversion.DefaultAvgTime = promptversionDescAvgTime.Default.(float64)
	// promptversionDescPerformanceScore is the schema descriptor for performance_score field.
	promptversionDescPerformanceScore := promptversionFields[6].Descriptor()
	// promptversion.DefaultPerformanceScore holds the default value on creation for the performance_score field.
	promptversion.DefaultPerformanceScore = promptversionDescPerformanceScore.Default.(float64)
	workflowFields := schema.Workflow{}.Fields()
	_ = workflowFields
}
