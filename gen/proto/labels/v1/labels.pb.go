// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: proto/labels/v1/labels.proto

package labelspb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Application struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SerialNumber    string                 `protobuf:"bytes,2,opt,name=serial_number,json=serialNumber,proto3" json:"serial_number,omitempty"`
	BrandName       string                 `protobuf:"bytes,3,opt,name=brand_name,json=brandName,proto3" json:"brand_name,omitempty"`
	FancifulName    string                 `protobuf:"bytes,4,opt,name=fanciful_name,json=fancifulName,proto3" json:"fanciful_name,omitempty"`
	ProducerName    string                 `protobuf:"bytes,5,opt,name=producer_name,json=producerName,proto3" json:"producer_name,omitempty"`
	ClassType       string                 `protobuf:"bytes,6,opt,name=class_type,json=classType,proto3" json:"class_type,omitempty"`
	BeverageType    string                 `protobuf:"bytes,7,opt,name=beverage_type,json=beverageType,proto3" json:"beverage_type,omitempty"`
	AlcoholContent  string                 `protobuf:"bytes,8,opt,name=alcohol_content,json=alcoholContent,proto3" json:"alcohol_content,omitempty"`
	NetContents     string                 `protobuf:"bytes,9,opt,name=net_contents,json=netContents,proto3" json:"net_contents,omitempty"`
	CountryOfOrigin string                 `protobuf:"bytes,10,opt,name=country_of_origin,json=countryOfOrigin,proto3" json:"country_of_origin,omitempty"`
	Status          string                 `protobuf:"bytes,11,opt,name=status,proto3" json:"status,omitempty"`
	ReviewNotes     string                 `protobuf:"bytes,12,opt,name=review_notes,json=reviewNotes,proto3" json:"review_notes,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Application) Reset() {
	*x = Application{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Application) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Application) ProtoMessage() {}

func (x *Application) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Application.ProtoReflect.Descriptor instead.
func (*Application) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{0}
}

func (x *Application) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Application) GetSerialNumber() string {
	if x != nil {
		return x.SerialNumber
	}
	return ""
}

func (x *Application) GetBrandName() string {
	if x != nil {
		return x.BrandName
	}
	return ""
}

func (x *Application) GetFancifulName() string {
	if x != nil {
		return x.FancifulName
	}
	return ""
}

func (x *Application) GetProducerName() string {
	if x != nil {
		return x.ProducerName
	}
	return ""
}

func (x *Application) GetClassType() string {
	if x != nil {
		return x.ClassType
	}
	return ""
}

func (x *Application) GetBeverageType() string {
	if x != nil {
		return x.BeverageType
	}
	return ""
}

func (x *Application) GetAlcoholContent() string {
	if x != nil {
		return x.AlcoholContent
	}
	return ""
}

func (x *Application) GetNetContents() string {
	if x != nil {
		return x.NetContents
	}
	return ""
}

func (x *Application) GetCountryOfOrigin() string {
	if x != nil {
		return x.CountryOfOrigin
	}
	return ""
}

func (x *Application) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Application) GetReviewNotes() string {
	if x != nil {
		return x.ReviewNotes
	}
	return ""
}

func (x *Application) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Application) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

// FieldResult is one declared field compared against the extracted label text.
type FieldResult struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Matched        bool                   `protobuf:"varint,1,opt,name=matched,proto3" json:"matched,omitempty"`
	Category       string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	DeclaredValue  string                 `protobuf:"bytes,3,opt,name=declared_value,json=declaredValue,proto3" json:"declared_value,omitempty"`
	ExtractedValue string                 `protobuf:"bytes,4,opt,name=extracted_value,json=extractedValue,proto3" json:"extracted_value,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *FieldResult) Reset() {
	*x = FieldResult{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldResult) ProtoMessage() {}

func (x *FieldResult) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldResult.ProtoReflect.Descriptor instead.
func (*FieldResult) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{1}
}

func (x *FieldResult) GetMatched() bool {
	if x != nil {
		return x.Matched
	}
	return false
}

func (x *FieldResult) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *FieldResult) GetDeclaredValue() string {
	if x != nil {
		return x.DeclaredValue
	}
	return ""
}

func (x *FieldResult) GetExtractedValue() string {
	if x != nil {
		return x.ExtractedValue
	}
	return ""
}

// ImageVerification is the per-field outcome for one label image.
type ImageVerification struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	ImageId       string                  `protobuf:"bytes,1,opt,name=image_id,json=imageId,proto3" json:"image_id,omitempty"`
	Role          string                  `protobuf:"bytes,2,opt,name=role,proto3" json:"role,omitempty"`
	Fields        map[string]*FieldResult `protobuf:"bytes,3,rep,name=fields,proto3" json:"fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Disposition   string                  `protobuf:"bytes,4,opt,name=disposition,proto3" json:"disposition,omitempty"`
	Confidence    float32                 `protobuf:"fixed32,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImageVerification) Reset() {
	*x = ImageVerification{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImageVerification) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImageVerification) ProtoMessage() {}

func (x *ImageVerification) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImageVerification.ProtoReflect.Descriptor instead.
func (*ImageVerification) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{2}
}

func (x *ImageVerification) GetImageId() string {
	if x != nil {
		return x.ImageId
	}
	return ""
}

func (x *ImageVerification) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *ImageVerification) GetFields() map[string]*FieldResult {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *ImageVerification) GetDisposition() string {
	if x != nil {
		return x.Disposition
	}
	return ""
}

func (x *ImageVerification) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type VerifyApplicationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicationId string                 `protobuf:"bytes,1,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyApplicationRequest) Reset() {
	*x = VerifyApplicationRequest{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyApplicationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyApplicationRequest) ProtoMessage() {}

func (x *VerifyApplicationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyApplicationRequest.ProtoReflect.Descriptor instead.
func (*VerifyApplicationRequest) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{3}
}

func (x *VerifyApplicationRequest) GetApplicationId() string {
	if x != nil {
		return x.ApplicationId
	}
	return ""
}

type VerifyApplicationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicationId string                 `protobuf:"bytes,1,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	SerialNumber  string                 `protobuf:"bytes,2,opt,name=serial_number,json=serialNumber,proto3" json:"serial_number,omitempty"`
	Disposition   string                 `protobuf:"bytes,3,opt,name=disposition,proto3" json:"disposition,omitempty"`
	Promoted      bool                   `protobuf:"varint,4,opt,name=promoted,proto3" json:"promoted,omitempty"`
	Images        []*ImageVerification   `protobuf:"bytes,5,rep,name=images,proto3" json:"images,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyApplicationResponse) Reset() {
	*x = VerifyApplicationResponse{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyApplicationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyApplicationResponse) ProtoMessage() {}

func (x *VerifyApplicationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyApplicationResponse.ProtoReflect.Descriptor instead.
func (*VerifyApplicationResponse) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{4}
}

func (x *VerifyApplicationResponse) GetApplicationId() string {
	if x != nil {
		return x.ApplicationId
	}
	return ""
}

func (x *VerifyApplicationResponse) GetSerialNumber() string {
	if x != nil {
		return x.SerialNumber
	}
	return ""
}

func (x *VerifyApplicationResponse) GetDisposition() string {
	if x != nil {
		return x.Disposition
	}
	return ""
}

func (x *VerifyApplicationResponse) GetPromoted() bool {
	if x != nil {
		return x.Promoted
	}
	return false
}

func (x *VerifyApplicationResponse) GetImages() []*ImageVerification {
	if x != nil {
		return x.Images
	}
	return nil
}

type ListApplicationsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// optional status filter; empty lists everything
	Status        string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListApplicationsRequest) Reset() {
	*x = ListApplicationsRequest{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListApplicationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListApplicationsRequest) ProtoMessage() {}

func (x *ListApplicationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListApplicationsRequest.ProtoReflect.Descriptor instead.
func (*ListApplicationsRequest) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{5}
}

func (x *ListApplicationsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListApplicationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Applications  []*Application         `protobuf:"bytes,1,rep,name=applications,proto3" json:"applications,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListApplicationsResponse) Reset() {
	*x = ListApplicationsResponse{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListApplicationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListApplicationsResponse) ProtoMessage() {}

func (x *ListApplicationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListApplicationsResponse.ProtoReflect.Descriptor instead.
func (*ListApplicationsResponse) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{6}
}

func (x *ListApplicationsResponse) GetApplications() []*Application {
	if x != nil {
		return x.Applications
	}
	return nil
}

type SubmitBatchRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ApplicationIds []string               `protobuf:"bytes,1,rep,name=application_ids,json=applicationIds,proto3" json:"application_ids,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SubmitBatchRequest) Reset() {
	*x = SubmitBatchRequest{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBatchRequest) ProtoMessage() {}

func (x *SubmitBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBatchRequest.ProtoReflect.Descriptor instead.
func (*SubmitBatchRequest) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{7}
}

func (x *SubmitBatchRequest) GetApplicationIds() []string {
	if x != nil {
		return x.ApplicationIds
	}
	return nil
}

type SubmitBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBatchResponse) Reset() {
	*x = SubmitBatchResponse{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBatchResponse) ProtoMessage() {}

func (x *SubmitBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBatchResponse.ProtoReflect.Descriptor instead.
func (*SubmitBatchResponse) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{8}
}

func (x *SubmitBatchResponse) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *SubmitBatchResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type GetBatchStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchStatusRequest) Reset() {
	*x = GetBatchStatusRequest{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchStatusRequest) ProtoMessage() {}

func (x *GetBatchStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchStatusRequest.ProtoReflect.Descriptor instead.
func (*GetBatchStatusRequest) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{9}
}

func (x *GetBatchStatusRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

type BatchItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicationId string                 `protobuf:"bytes,1,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	Outcome       string                 `protobuf:"bytes,2,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Disposition   string                 `protobuf:"bytes,3,opt,name=disposition,proto3" json:"disposition,omitempty"`
	Error         string                 `protobuf:"bytes,4,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BatchItem) Reset() {
	*x = BatchItem{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchItem) ProtoMessage() {}

func (x *BatchItem) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchItem.ProtoReflect.Descriptor instead.
func (*BatchItem) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{10}
}

func (x *BatchItem) GetApplicationId() string {
	if x != nil {
		return x.ApplicationId
	}
	return ""
}

func (x *BatchItem) GetOutcome() string {
	if x != nil {
		return x.Outcome
	}
	return ""
}

func (x *BatchItem) GetDisposition() string {
	if x != nil {
		return x.Disposition
	}
	return ""
}

func (x *BatchItem) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type GetBatchStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Total         int32                  `protobuf:"varint,3,opt,name=total,proto3" json:"total,omitempty"`
	Processed     int32                  `protobuf:"varint,4,opt,name=processed,proto3" json:"processed,omitempty"`
	Successful    int32                  `protobuf:"varint,5,opt,name=successful,proto3" json:"successful,omitempty"`
	Failed        int32                  `protobuf:"varint,6,opt,name=failed,proto3" json:"failed,omitempty"`
	StartedAt     string                 `protobuf:"bytes,7,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,8,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	Items         []*BatchItem           `protobuf:"bytes,9,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchStatusResponse) Reset() {
	*x = GetBatchStatusResponse{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchStatusResponse) ProtoMessage() {}

func (x *GetBatchStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchStatusResponse.ProtoReflect.Descriptor instead.
func (*GetBatchStatusResponse) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{11}
}

func (x *GetBatchStatusResponse) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *GetBatchStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetBatchStatusResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *GetBatchStatusResponse) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

func (x *GetBatchStatusResponse) GetSuccessful() int32 {
	if x != nil {
		return x.Successful
	}
	return 0
}

func (x *GetBatchStatusResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *GetBatchStatusResponse) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *GetBatchStatusResponse) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *GetBatchStatusResponse) GetItems() []*BatchItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type ExportReportRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// optional status filter; empty exports every application
	Status        string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportRequest) Reset() {
	*x = ExportReportRequest{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportRequest) ProtoMessage() {}

func (x *ExportReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportRequest.ProtoReflect.Descriptor instead.
func (*ExportReportRequest) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{12}
}

func (x *ExportReportRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ExportReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportResponse) Reset() {
	*x = ExportReportResponse{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportResponse) ProtoMessage() {}

func (x *ExportReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportResponse.ProtoReflect.Descriptor instead.
func (*ExportReportResponse) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{13}
}

func (x *ExportReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_proto_labels_v1_labels_proto protoreflect.FileDescriptor

const file_proto_labels_v1_labels_proto_rawDesc = "" +
	"\n" +
	"\x1cproto/labels/v1/labels.proto\x12\tlabels.v1\"\xe0\x03\n" +
	"\vApplication\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rserial_number\x18\x02 \x01(\tR\fserialNumber\x12\x1d\n" +
	"\n" +
	"brand_name\x18\x03 \x01(\tR\tbrandName\x12#\n" +
	"\rfanciful_name\x18\x04 \x01(\tR\ffancifulName\x12#\n" +
	"\rproducer_name\x18\x05 \x01(\tR\fproducerName\x12\x1d\n" +
	"\n" +
	"class_type\x18\x06 \x01(\tR\tclassType\x12#\n" +
	"\rbeverage_type\x18\a \x01(\tR\fbeverageType\x12'\n" +
	"\x0falcohol_content\x18\b \x01(\tR\x0ealcoholContent\x12!\n" +
	"\fnet_contents\x18\t \x01(\tR\vnetContents\x12*\n" +
	"\x11country_of_origin\x18\n" +
	" \x01(\tR\x0fcountryOfOrigin\x12\x16\n" +
	"\x06status\x18\v \x01(\tR\x06status\x12!\n" +
	"\freview_notes\x18\f \x01(\tR\vreviewNotes\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"\x93\x01\n" +
	"\vFieldResult\x12\x18\n" +
	"\amatched\x18\x01 \x01(\bR\amatched\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12%\n" +
	"\x0edeclared_value\x18\x03 \x01(\tR\rdeclaredValue\x12'\n" +
	"\x0fextracted_value\x18\x04 \x01(\tR\x0eextractedValue\"\x99\x02\n" +
	"\x11ImageVerification\x12\x19\n" +
	"\bimage_id\x18\x01 \x01(\tR\aimageId\x12\x12\n" +
	"\x04role\x18\x02 \x01(\tR\x04role\x12@\n" +
	"\x06fields\x18\x03 \x03(\v2(.labels.v1.ImageVerification.FieldsEntryR\x06fields\x12 \n" +
	"\vdisposition\x18\x04 \x01(\tR\vdisposition\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x02R\n" +
	"confidence\x1aQ\n" +
	"\vFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12,\n" +
	"\x05value\x18\x02 \x01(\v2\x16.labels.v1.FieldResultR\x05value:\x028\x01\"A\n" +
	"\x18VerifyApplicationRequest\x12%\n" +
	"\x0eapplication_id\x18\x01 \x01(\tR\rapplicationId\"\xdb\x01\n" +
	"\x19VerifyApplicationResponse\x12%\n" +
	"\x0eapplication_id\x18\x01 \x01(\tR\rapplicationId\x12#\n" +
	"\rserial_number\x18\x02 \x01(\tR\fserialNumber\x12 \n" +
	"\vdisposition\x18\x03 \x01(\tR\vdisposition\x12\x1a\n" +
	"\bpromoted\x18\x04 \x01(\bR\bpromoted\x124\n" +
	"\x06images\x18\x05 \x03(\v2\x1c.labels.v1.ImageVerificationR\x06images\"1\n" +
	"\x17ListApplicationsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"V\n" +
	"\x18ListApplicationsResponse\x12:\n" +
	"\fapplications\x18\x01 \x03(\v2\x16.labels.v1.ApplicationR\fapplications\"=\n" +
	"\x12SubmitBatchRequest\x12'\n" +
	"\x0fapplication_ids\x18\x01 \x03(\tR\x0eapplicationIds\"F\n" +
	"\x13SubmitBatchResponse\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"2\n" +
	"\x15GetBatchStatusRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\"\x84\x01\n" +
	"\tBatchItem\x12%\n" +
	"\x0eapplication_id\x18\x01 \x01(\tR\rapplicationId\x12\x18\n" +
	"\aoutcome\x18\x02 \x01(\tR\aoutcome\x12 \n" +
	"\vdisposition\x18\x03 \x01(\tR\vdisposition\x12\x14\n" +
	"\x05error\x18\x04 \x01(\tR\x05error\"\xa3\x02\n" +
	"\x16GetBatchStatusResponse\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x14\n" +
	"\x05total\x18\x03 \x01(\x05R\x05total\x12\x1c\n" +
	"\tprocessed\x18\x04 \x01(\x05R\tprocessed\x12\x1e\n" +
	"\n" +
	"successful\x18\x05 \x01(\x05R\n" +
	"successful\x12\x16\n" +
	"\x06failed\x18\x06 \x01(\x05R\x06failed\x12\x1d\n" +
	"\n" +
	"started_at\x18\a \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\b \x01(\tR\n" +
	"finishedAt\x12*\n" +
	"\x05items\x18\t \x03(\v2\x14.labels.v1.BatchItemR\x05items\"-\n" +
	"\x13ExportReportRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"*\n" +
	"\x14ExportReportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xcc\x01\n" +
	"\rLabelsService\x12^\n" +
	"\x11VerifyApplication\x12#.labels.v1.VerifyApplicationRequest\x1a$.labels.v1.VerifyApplicationResponse\x12[\n" +
	"\x10ListApplications\x12\".labels.v1.ListApplicationsRequest\x1a#.labels.v1.ListApplicationsResponse2\xb3\x01\n" +
	"\fBatchService\x12L\n" +
	"\vSubmitBatch\x12\x1d.labels.v1.SubmitBatchRequest\x1a\x1e.labels.v1.SubmitBatchResponse\x12U\n" +
	"\x0eGetBatchStatus\x12 .labels.v1.GetBatchStatusRequest\x1a!.labels.v1.GetBatchStatusResponse2`\n" +
	"\rExportService\x12O\n" +
	"\fExportReport\x12\x1e.labels.v1.ExportReportRequest\x1a\x1f.labels.v1.ExportReportResponseB)Z'labelproof/gen/proto/labels/v1;labelspbb\x06proto3"

var (
	file_proto_labels_v1_labels_proto_rawDescOnce sync.Once
	file_proto_labels_v1_labels_proto_rawDescData []byte
)

func file_proto_labels_v1_labels_proto_rawDescGZIP() []byte {
	file_proto_labels_v1_labels_proto_rawDescOnce.Do(func() {
		file_proto_labels_v1_labels_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_labels_v1_labels_proto_rawDesc), len(file_proto_labels_v1_labels_proto_rawDesc)))
	})
	return file_proto_labels_v1_labels_proto_rawDescData
}

var file_proto_labels_v1_labels_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_proto_labels_v1_labels_proto_goTypes = []any{
	(*Application)(nil),               // 0: labels.v1.Application
	(*FieldResult)(nil),               // 1: labels.v1.FieldResult
	(*ImageVerification)(nil),         // 2: labels.v1.ImageVerification
	(*VerifyApplicationRequest)(nil),  // 3: labels.v1.VerifyApplicationRequest
	(*VerifyApplicationResponse)(nil), // 4: labels.v1.VerifyApplicationResponse
	(*ListApplicationsRequest)(nil),   // 5: labels.v1.ListApplicationsRequest
	(*ListApplicationsResponse)(nil),  // 6: labels.v1.ListApplicationsResponse
	(*SubmitBatchRequest)(nil),        // 7: labels.v1.SubmitBatchRequest
	(*SubmitBatchResponse)(nil),       // 8: labels.v1.SubmitBatchResponse
	(*GetBatchStatusRequest)(nil),     // 9: labels.v1.GetBatchStatusRequest
	(*BatchItem)(nil),                 // 10: labels.v1.BatchItem
	(*GetBatchStatusResponse)(nil),    // 11: labels.v1.GetBatchStatusResponse
	(*ExportReportRequest)(nil),       // 12: labels.v1.ExportReportRequest
	(*ExportReportResponse)(nil),      // 13: labels.v1.ExportReportResponse
	nil,                               // 14: labels.v1.ImageVerification.FieldsEntry
}
var file_proto_labels_v1_labels_proto_depIdxs = []int32{
	14, // 0: labels.v1.ImageVerification.fields:type_name -> labels.v1.ImageVerification.FieldsEntry
	2,  // 1: labels.v1.VerifyApplicationResponse.images:type_name -> labels.v1.ImageVerification
	0,  // 2: labels.v1.ListApplicationsResponse.applications:type_name -> labels.v1.Application
	10, // 3: labels.v1.GetBatchStatusResponse.items:type_name -> labels.v1.BatchItem
	1,  // 4: labels.v1.ImageVerification.FieldsEntry.value:type_name -> labels.v1.FieldResult
	3,  // 5: labels.v1.LabelsService.VerifyApplication:input_type -> labels.v1.VerifyApplicationRequest
	5,  // 6: labels.v1.LabelsService.ListApplications:input_type -> labels.v1.ListApplicationsRequest
	7,  // 7: labels.v1.BatchService.SubmitBatch:input_type -> labels.v1.SubmitBatchRequest
	9,  // 8: labels.v1.BatchService.GetBatchStatus:input_type -> labels.v1.GetBatchStatusRequest
	12, // 9: labels.v1.ExportService.ExportReport:input_type -> labels.v1.ExportReportRequest
	4,  // 10: labels.v1.LabelsService.VerifyApplication:output_type -> labels.v1.VerifyApplicationResponse
	6,  // 11: labels.v1.LabelsService.ListApplications:output_type -> labels.v1.ListApplicationsResponse
	8,  // 12: labels.v1.BatchService.SubmitBatch:output_type -> labels.v1.SubmitBatchResponse
	11, // 13: labels.v1.BatchService.GetBatchStatus:output_type -> labels.v1.GetBatchStatusResponse
	13, // 14: labels.v1.ExportService.ExportReport:output_type -> labels.v1.ExportReportResponse
	10, // [10:15] is the sub-list for method output_type
	5,  // [5:10] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_proto_labels_v1_labels_proto_init() }
func file_proto_labels_v1_labels_proto_init() {
	if File_proto_labels_v1_labels_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_labels_v1_labels_proto_rawDesc), len(file_proto_labels_v1_labels_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_proto_labels_v1_labels_proto_goTypes,
		DependencyIndexes: file_proto_labels_v1_labels_proto_depIdxs,
		MessageInfos:      file_proto_labels_v1_labels_proto_msgTypes,
	}.Build()
	File_proto_labels_v1_labels_proto = out.File
	file_proto_labels_v1_labels_proto_goTypes = nil
	file_proto_labels_v1_labels_proto_depIdxs = nil
}
