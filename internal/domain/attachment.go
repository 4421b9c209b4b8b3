package domain

// Attachment describes a stored upload. Filename is the generated
// on-disk name, OriginalFilename the sanitized client name.
//
// Width, Height and Thumbnail exist in the schema but nothing writes
// them; they stay nil until dimension probing is ever implemented.
type Attachment struct {
	Filename         string
	OriginalFilename string
	FileSize         int64
	Width            *int
	Height           *int
	Thumbnail        *string
}
