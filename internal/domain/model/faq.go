package model

// FAQEntry is a localized question/answer pair.
type FAQEntry struct {
	ID       int64
	Question string
	Answer   string
}

// FAQRecord is the storage-side representation with both localizations.
type FAQRecord struct {
	ID              int64
	Position        int64
	Question        string
	Answer          string
	EnglishQuestion string
	EnglishAnswer   string
	Available       bool
}

// Localize projects the record into the requested language.
func (r *FAQRecord) Localize(lang Language) FAQEntry {
	if lang == LanguageEnglish {
		return FAQEntry{ID: r.ID, Question: r.EnglishQuestion, Answer: r.EnglishAnswer}
	}
	return FAQEntry{ID: r.ID, Question: r.Question, Answer: r.Answer}
}
