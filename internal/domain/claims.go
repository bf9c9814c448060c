package domain

// Claims is the verified identity of the acting subject, issued by
// the external identity provider and carried explicitly through each
// operation rather than ambient session state.
type Claims struct {
	SubjectID   string `json:"subject_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}
