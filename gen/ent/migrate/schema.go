// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicationsColumns holds the columns for the "applications" table.
	ApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "serial_number", Type: field.TypeString, Unique: true},
		{Name: "brand_name", Type: field.TypeString},
		{Name: "fanciful_name", Type: field.TypeString, Nullable: true},
		{Name: "producer_name", Type: field.TypeString},
		{Name: "class_type", Type: field.TypeString, Nullable: true},
		{Name: "beverage_type", Type: field.TypeEnum, Enums: []string{"wine", "beer", "spirits"}},
		{Name: "alcohol_content", Type: field.TypeString, Nullable: true},
		{Name: "net_contents", Type: field.TypeString, Nullable: true},
		{Name: "grape_varietal", Type: field.TypeString, Nullable: true},
		{Name: "appellation", Type: field.TypeString, Nullable: true},
		{Name: "vintage", Type: field.TypeString, Nullable: true},
		{Name: "country_of_origin", Type: field.TypeString, Nullable: true},
		{Name: "health_warning", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "needs_review", "approved", "rejected"}, Default: "pending"},
		{Name: "review_notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ApplicationsTable holds the schema information for the "applications" table.
	ApplicationsTable = &schema.Table{
		Name:       "applications",
		Columns:    ApplicationsColumns,
		PrimaryKey: []*schema.Column{ApplicationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "application_status",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[14]},
			},
		},
	}
	// ExtractionRecordsColumns holds the columns for the "extraction_records" table.
	ExtractionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "verification_json", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "confidence", Type: field.TypeFloat32, Default: 0},
		{Name: "processing_time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "application_id", Type: field.TypeUUID},
		{Name: "image_id", Type: field.TypeUUID, Unique: true},
	}
	// ExtractionRecordsTable holds the schema information for the "extraction_records" table.
	ExtractionRecordsTable = &schema.Table{
		Name:       "extraction_records",
		Columns:    ExtractionRecordsColumns,
		PrimaryKey: []*schema.Column{ExtractionRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_records_applications_extractions",
				Columns:    []*schema.Column{ExtractionRecordsColumns[8]},
				RefColumns: []*schema.Column{ApplicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extraction_records_label_images_extraction",
				Columns:    []*schema.Column{ExtractionRecordsColumns[9]},
				RefColumns: []*schema.Column{LabelImagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// LabelImagesColumns holds the columns for the "label_images" table.
	LabelImagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"front", "back", "side", "neck"}},
		{Name: "content_type", Type: field.TypeString},
		{Name: "data", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "application_id", Type: field.TypeUUID},
	}
	// LabelImagesTable holds the schema information for the "label_images" table.
	LabelImagesTable = &schema.Table{
		Name:       "label_images",
		Columns:    LabelImagesColumns,
		PrimaryKey: []*schema.Column{LabelImagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "label_images_applications_images",
				Columns:    []*schema.Column{LabelImagesColumns[6]},
				RefColumns: []*schema.Column{ApplicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "labelimage_application_id_role",
				Unique:  false,
				Columns: []*schema.Column{LabelImagesColumns[6], LabelImagesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicationsTable,
		ExtractionRecordsTable,
		LabelImagesTable,
	}
)

func init() {
	ApplicationsTable.Annotation = &entsql.Annotation{
		Table: "applications",
	}
	ExtractionRecordsTable.ForeignKeys[0].RefTable = ApplicationsTable
	ExtractionRecordsTable.ForeignKeys[1].RefTable = LabelImagesTable
	ExtractionRecordsTable.Annotation = &entsql.Annotation{
		Table: "extraction_records",
	}
	LabelImagesTable.ForeignKeys[0].RefTable = ApplicationsTable
	LabelImagesTable.Annotation = &entsql.Annotation{
		Table: "label_images",
	}
}
