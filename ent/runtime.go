// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/kdiallo/rianterm/ent/apirequestevent"
	"github.com/kdiallo/rianterm/ent/authevent"
	"github.com/kdiallo/rianterm/ent/progressevent"
	"github.com/kdiallo/rianterm/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apirequesteventMixin := schema.APIRequestEvent{}.Mixin()
	apirequesteventMixinFields0 := apirequesteventMixin[0].Fields()
	_ = apirequesteventMixinFields0
	apirequesteventFields := schema.APIRequestEvent{}.Fields()
	_ = apirequesteventFields
	// apirequesteventDescTimestamp is the schema descriptor for timestamp field.
	apirequesteventDescTimestamp := apirequesteventMixinFields0[1].Descriptor()
	// apirequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	apirequestevent.DefaultTimestamp = apirequesteventDescTimestamp.Default.(func() time.Time)
	// apirequesteventDescMethod is the schema descriptor for method field.
	apirequesteventDescMethod := apirequesteventFields[0].Descriptor()
	// apirequestevent.MethodValidator is a validator for the "method" field. It is called by the builders before save.
	apirequestevent.MethodValidator = apirequesteventDescMethod.Validators[0].(func(string) error)
	// apirequesteventDescPath is the schema descriptor for path field.
	apirequesteventDescPath := apirequesteventFields[1].Descriptor()
	// apirequestevent.PathValidator is a validator for the "path" field. It is called by the builders before save.
	apirequestevent.PathValidator = apirequesteventDescPath.Validators[0].(func(string) error)
	// apirequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	apirequesteventDescLatencyMs := apirequesteventFields[2].Descriptor()
	// apirequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	apirequestevent.DefaultLatencyMs = apirequesteventDescLatencyMs.Default.(int64)
	autheventMixin := schema.AuthEvent{}.Mixin()
	autheventMixinFields0 := autheventMixin[0].Fields()
	_ = autheventMixinFields0
	autheventFields := schema.AuthEvent{}.Fields()
	_ = autheventFields
	// autheventDescTimestamp is the schema descriptor for timestamp field.
	autheventDescTimestamp := autheventMixinFields0[1].Descriptor()
	// authevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	authevent.DefaultTimestamp = autheventDescTimestamp.Default.(func() time.Time)
	// autheventDescAction is the schema descriptor for action field.
	autheventDescAction := autheventFields[0].Descriptor()
	// authevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	authevent.ActionValidator = autheventDescAction.Validators[0].(func(string) error)
	progresseventMixin := schema.ProgressEvent{}.Mixin()
	progresseventMixinFields0 := progresseventMixin[0].Fields()
	_ = progresseventMixinFields0
	progresseventFields := schema.ProgressEvent{}.Fields()
	_ = progresseventFields
	// progresseventDescTimestamp is the schema descriptor for timestamp field.
	progresseventDescTimestamp := progresseventMixinFields0[1].Descriptor()
	// progressevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	progressevent.DefaultTimestamp = progresseventDescTimestamp.Default.(func() time.Time)
	// progresseventDescCompetenceID is the schema descriptor for competence_id field.
	progresseventDescCompetenceID := progresseventFields[0].Descriptor()
	// progressevent.CompetenceIDValidator is a validator for the "competence_id" field. It is called by the builders before save.
	progressevent.CompetenceIDValidator = progresseventDescCompetenceID.Validators[0].(func(string) error)
	// progresseventDescCompetenceNumber is the schema descriptor for competence_number field.
	progresseventDescCompetenceNumber := progresseventFields[1].Descriptor()
	// progressevent.DefaultCompetenceNumber holds the default value on creation for the competence_number field.
	progressevent.DefaultCompetenceNumber = progresseventDescCompetenceNumber.Default.(int)
	// progresseventDescAction is the schema descriptor for action field.
	progresseventDescAction := progresseventFields[2].Descriptor()
	// progressevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	progressevent.ActionValidator = progresseventDescAction.Validators[0].(func(string) error)
	// progresseventDescScore is the schema descriptor for score field.
	progresseventDescScore := progresseventFields[3].Descriptor()
	// progressevent.DefaultScore holds the default value on creation for the score field.
	progressevent.DefaultScore = progresseventDescScore.Default.(float64)
	// progresseventDescPassed is the schema descriptor for passed field.
	progresseventDescPassed := progresseventFields[4].Descriptor()
	// progressevent.DefaultPassed holds the default value on creation for the passed field.
	progressevent.DefaultPassed = progresseventDescPassed.Default.(bool)
}
