package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"labelproof/constants"
)

type Application struct{ ent.Schema }

func (Application) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "applications"},
	}
}

func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("serial_number").NotEmpty().Unique(),
		// Applicant-declared label fields. Immutable once submitted; a
		// correction means a new application.
		field.String("brand_name").NotEmpty().Immutable(),
		field.String("fanciful_name").Optional().Immutable(),
		field.String("producer_name").NotEmpty().Immutable(),
		field.String("class_type").Optional().Immutable(),
		field.Enum("beverage_type").
			Values(constants.BeverageTypeStrings()...).
			Immutable(),
		field.String("alcohol_content").Optional().Immutable(),
		field.String("net_contents").Optional().Immutable(),
		field.String("grape_varietal").Optional().Immutable(),
		field.String("appellation").Optional().Immutable(),
		field.String("vintage").Optional().Immutable(),
		field.String("country_of_origin").Optional().Immutable(),
		field.String("health_warning").Optional().Immutable(),
		// Workflow status; only a reviewer moves it to approved/rejected.
		field.Enum("status").
			Values(constants.StatusStrings()...).
			Default(string(constants.StatusPending)),
		field.String("review_notes").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Application) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE application -> MANY label images
		edge.To("images", LabelImage.Type),
		// ONE application -> MANY extraction records
		edge.To("extractions", ExtractionRecord.Type),
	}
}

func (Application) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
