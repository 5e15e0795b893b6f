package models

// DocType identifies which curated data file a document came from.
type DocType string

const (
	DocTypeBusiness  DocType = "business"
	DocTypeFAQ       DocType = "faq"
	DocTypeProduct   DocType = "product"
	DocTypeInstagram DocType = "instagram"
)

// Document is one ingested corpus entry. Documents are immutable once
// loaded; Seq records ingestion order and is the tie-break for
// equal-score search results.
type Document struct {
	Seq    int     `json:"-"      bson:"seq"`
	Type   DocType `json:"type"   bson:"type"`
	ID     string  `json:"id"     bson:"id"`
	Text   string  `json:"text"   bson:"text"`
	Source string  `json:"source" bson:"source"`
}
