package vision

import "context"

// Field is one value the vision model read off a label image.
// Confidence is advisory; the comparison policy does not branch on it.
type Field struct {
	Value      string  `json:"value"`
	Confidence float32 `json:"confidence,omitempty"` // 0..1
}

// Extraction is the normalized shape we want from the vision model:
// one entry per label field it could locate.
type Extraction struct {
	Fields    map[string]Field
	ModelName string
	Raw       []byte // model output as returned, for audit storage
}

// Confidence averages the per-field confidences, 0 when nothing was read.
func (e Extraction) Confidence() float32 {
	if len(e.Fields) == 0 {
		return 0
	}
	var sum float32
	for _, f := range e.Fields {
		sum += f.Confidence
	}
	return sum / float32(len(e.Fields))
}

// Request carries one label image to the extractor.
type Request struct {
	ImageData    []byte
	ContentType  string // image/jpeg, image/png, image/webp
	BeverageType string // hint for the prompt, e.g. "wine"
	Role         string // optional hint: front, back, side, neck
}

// Extractor is the interface the verification pipeline depends on.
// Implementations enforce their own per-call timeout.
type Extractor interface {
	Extract(ctx context.Context, req Request) (Extraction, error)
}
