package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"labelproof/constants"
)

type LabelImage struct{ ent.Schema }

func (LabelImage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "label_images"},
	}
}

func (LabelImage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define a composite index on (application, role)
		field.UUID("application_id", uuid.UUID{}),
		field.Enum("role").
			Values(constants.ImageRoleStrings()...),
		field.String("content_type").NotEmpty(),
		field.Bytes("data").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Int("file_size").NonNegative(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (LabelImage) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY images -> ONE application
		edge.From("application", Application.Type).
			Ref("images").
			Field("application_id").
			Required().
			Unique(),
		// ONE image -> AT MOST ONE extraction record (overwritten per run)
		edge.To("extraction", ExtractionRecord.Type).
			Unique(),
	}
}

func (LabelImage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("application_id", "role"),
	}
}
