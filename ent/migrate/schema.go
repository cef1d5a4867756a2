// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIRequestEventsColumns holds the columns for the "api_request_events" table.
	APIRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "method", Type: field.TypeString},
		{Name: "path", Type: field.TypeString},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// APIRequestEventsTable holds the schema information for the "api_request_events" table.
	APIRequestEventsTable = &schema.Table{
		Name:       "api_request_events",
		Columns:    APIRequestEventsColumns,
		PrimaryKey: []*schema.Column{APIRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apirequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[1]},
			},
			{
				Name:    "apirequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[2]},
			},
			{
				Name:    "apirequestevent_path",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[4]},
			},
			{
				Name:    "apirequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[6]},
			},
		},
	}
	// AuthEventsColumns holds the columns for the "auth_events" table.
	AuthEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "message", Type: field.TypeString, Nullable: true},
	}
	// AuthEventsTable holds the schema information for the "auth_events" table.
	AuthEventsTable = &schema.Table{
		Name:       "auth_events",
		Columns:    AuthEventsColumns,
		PrimaryKey: []*schema.Column{AuthEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "authevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AuthEventsColumns[1]},
			},
			{
				Name:    "authevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AuthEventsColumns[2]},
			},
			{
				Name:    "authevent_action",
				Unique:  false,
				Columns: []*schema.Column{AuthEventsColumns[3]},
			},
		},
	}
	// ProgressEventsColumns holds the columns for the "progress_events" table.
	ProgressEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "competence_id", Type: field.TypeString},
		{Name: "competence_number", Type: field.TypeInt, Default: 0},
		{Name: "action", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "passed", Type: field.TypeBool, Default: false},
	}
	// ProgressEventsTable holds the schema information for the "progress_events" table.
	ProgressEventsTable = &schema.Table{
		Name:       "progress_events",
		Columns:    ProgressEventsColumns,
		PrimaryKey: []*schema.Column{ProgressEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[1]},
			},
			{
				Name:    "progressevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[2]},
			},
			{
				Name:    "progressevent_competence_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[3]},
			},
			{
				Name:    "progressevent_action",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIRequestEventsTable,
		AuthEventsTable,
		ProgressEventsTable,
	}
)

func init() {
}
