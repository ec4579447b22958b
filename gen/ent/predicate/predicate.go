// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Application is the predicate function for application builders.
type Application func(*sql.Selector)

// ExtractionRecord is the predicate function for extractionrecord builders.
type ExtractionRecord func(*sql.Selector)

// LabelImage is the predicate function for labelimage builders.
type LabelImage func(*sql.Selector)
