package lead

// ===============================
// Lead Status / Source
// ===============================

type Status string

const (
	StatusNew      Status = "Nouveau"
	StatusApproved Status = "Approuvé"
	StatusDone     Status = "Terminé"
)

type Source string

const (
	SourceContact   Source = "contact"
	SourceQuote     Source = "quote"
	SourceWebDesign Source = "web-design"
)
