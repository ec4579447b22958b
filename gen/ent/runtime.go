// Code generated by ent, DO NOT EDIT.

package ent

import (
	"labelproof/db/ent/schema"
	"labelproof/gen/ent/application"
	"labelproof/gen/ent/extractionrecord"
	"labelproof/gen/ent/labelimage"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicationFields := schema.Application{}.Fields()
	_ = applicationFields
	// applicationDescSerialNumber is the schema descriptor for serial_number field.
	applicationDescSerialNumber := applicationFields[1].Descriptor()
	// application.SerialNumberValidator is a validator for the "serial_number" field. It is called by the builders before save.
	application.SerialNumberValidator = applicationDescSerialNumber.Validators[0].(func(string) error)
	// applicationDescBrandName is the schema descriptor for brand_name field.
	applicationDescBrandName := applicationFields[2].Descriptor()
	// application.BrandNameValidator is a validator for the "brand_name" field. It is called by the builders before save.
	application.BrandNameValidator = applicationDescBrandName.Validators[0].(func(string) error)
	// applicationDescProducerName is the schema descriptor for producer_name field.
	applicationDescProducerName := applicationFields[4].Descriptor()
	// application.ProducerNameValidator is a validator for the "producer_name" field. It is called by the builders before save.
	application.ProducerNameValidator = applicationDescProducerName.Validators[0].(func(string) error)
	// applicationDescCreatedAt is the schema descriptor for created_at field.
	applicationDescCreatedAt := applicationFields[16].Descriptor()
	// application.DefaultCreatedAt holds the default value on creation for the created_at field.
	application.DefaultCreatedAt = applicationDescCreatedAt.Default.(func() time.Time)
	// applicationDescUpdatedAt is the schema descriptor for updated_at field.
	applicationDescUpdatedAt := applicationFields[17].Descriptor()
	// application.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	application.DefaultUpdatedAt = applicationDescUpdatedAt.Default.(func() time.Time)
	// application.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	application.UpdateDefaultUpdatedAt = applicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// applicationDescID is the schema descriptor for id field.
	applicationDescID := applicationFields[0].Descriptor()
	// application.DefaultID holds the default value on creation for the id field.
	application.DefaultID = applicationDescID.Default.(func() uuid.UUID)
	extractionrecordFields := schema.ExtractionRecord{}.Fields()
	_ = extractionrecordFields
	// extractionrecordDescConfidence is the schema descriptor for confidence field.
	extractionrecordDescConfidence := extractionrecordFields[5].Descriptor()
	// extractionrecord.DefaultConfidence holds the default value on creation for the confidence field.
	extractionrecord.DefaultConfidence = extractionrecordDescConfidence.Default.(float32)
	// extractionrecordDescProcessingTimeMs is the schema descriptor for processing_time_ms field.
	extractionrecordDescProcessingTimeMs := extractionrecordFields[6].Descriptor()
	// extractionrecord.DefaultProcessingTimeMs holds the default value on creation for the processing_time_ms field.
	extractionrecord.DefaultProcessingTimeMs = extractionrecordDescProcessingTimeMs.Default.(int64)
	// extractionrecord.ProcessingTimeMsValidator is a validator for the "processing_time_ms" field. It is called by the builders before save.
	extractionrecord.ProcessingTimeMsValidator = extractionrecordDescProcessingTimeMs.Validators[0].(func(int64) error)
	// extractionrecordDescCreatedAt is the schema descriptor for created_at field.
	extractionrecordDescCreatedAt := extractionrecordFields[8].Descriptor()
	// extractionrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionrecord.DefaultCreatedAt = extractionrecordDescCreatedAt.Default.(func() time.Time)
	// extractionrecordDescUpdatedAt is the schema descriptor for updated_at field.
	extractionrecordDescUpdatedAt := extractionrecordFields[9].Descriptor()
	// extractionrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractionrecord.DefaultUpdatedAt = extractionrecordDescUpdatedAt.Default.(func() time.Time)
	// extractionrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractionrecord.UpdateDefaultUpdatedAt = extractionrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractionrecordDescID is the schema descriptor for id field.
	extractionrecordDescID := extractionrecordFields[0].Descriptor()
	// extractionrecord.DefaultID holds the default value on creation for the id field.
	extractionrecord.DefaultID = extractionrecordDescID.Default.(func() uuid.UUID)
	labelimageFields := schema.LabelImage{}.Fields()
	_ = labelimageFields
	// labelimageDescContentType is the schema descriptor for content_type field.
	labelimageDescContentType := labelimageFields[3].Descriptor()
	// labelimage.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	labelimage.ContentTypeValidator = labelimageDescContentType.Validators[0].(func(string) error)
	// labelimageDescData is the schema descriptor for data field.
	labelimageDescData := labelimageFields[4].Descriptor()
	// labelimage.DataValidator is a validator for the "data" field. It is called by the builders before save.
	labelimage.DataValidator = labelimageDescData.Validators[0].(func([]byte) error)
	// labelimageDescFileSize is the schema descriptor for file_size field.
	labelimageDescFileSize := labelimageFields[5].Descriptor()
	// labelimage.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	labelimage.FileSizeValidator = labelimageDescFileSize.Validators[0].(func(int) error)
	// labelimageDescUploadedAt is the schema descriptor for uploaded_at field.
	labelimageDescUploadedAt := labelimageFields[6].Descriptor()
	// labelimage.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	labelimage.DefaultUploadedAt = labelimageDescUploadedAt.Default.(func() time.Time)
	// labelimageDescID is the schema descriptor for id field.
	labelimageDescID := labelimageFields[0].Descriptor()
	// labelimage.DefaultID holds the default value on creation for the id field.
	labelimage.DefaultID = labelimageDescID.Default.(func() uuid.UUID)
}
