package constants

// Canonical label field names. These are the keys shared by the applications
// table, the vision extraction schema, and the verification result map.
const (
	FieldBrandName       = "brand_name"
	FieldFancifulName    = "fanciful_name"
	FieldProducerName    = "producer_name"
	FieldClassType       = "class_type"
	FieldAlcoholContent  = "alcohol_content"
	FieldNetContents     = "net_contents"
	FieldGrapeVarietal   = "grape_varietal"
	FieldAppellation     = "appellation"
	FieldVintage         = "vintage"
	FieldCountryOfOrigin = "country_of_origin"
	FieldHealthWarning   = "health_warning"
)

// LabelFields lists every field the extractor is asked to read, in the order
// reviewers expect them in reports.
var LabelFields = []string{
	FieldBrandName,
	FieldFancifulName,
	FieldProducerName,
	FieldClassType,
	FieldAlcoholContent,
	FieldNetContents,
	FieldGrapeVarietal,
	FieldAppellation,
	FieldVintage,
	FieldCountryOfOrigin,
	FieldHealthWarning,
}
