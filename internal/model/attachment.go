package model

// AttachmentKind is the closed set of attachment types the extractor
// dispatches on. Adding a kind requires handling it at every switch site.
type AttachmentKind string

const (
	AttachmentPDF     AttachmentKind = "pdf"
	AttachmentImage   AttachmentKind = "image"
	AttachmentGeneric AttachmentKind = "generic"
)

// Attachment is an uploaded document accompanying a chat message.
type Attachment struct {
	Kind AttachmentKind `json:"kind"`
	Name string         `json:"name"`
	Data []byte         `json:"data"`
}
