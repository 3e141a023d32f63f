package models

// Director is a normalized directory entry. The backend stores these rows
// under inconsistent keys; the gateway's normalization layer is the only
// producer of this type, so every consumer sees one shape.
type Director struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Email               string   `json:"email,omitempty"`
	Industry            string   `json:"industry"`
	Description         string   `json:"description"`
	LogoURL             string   `json:"logo_url,omitempty"`
	Age                 int      `json:"age,omitempty"`
	DINNumber           string   `json:"din_number,omitempty"`
	IsCurrentDirector   bool     `json:"is_current_director"`
	YearsOfExperience   int      `json:"years_of_experience"`
	IsIODCertified      bool     `json:"is_iod_certified"`
	IODCertificateURL   string   `json:"iod_certificate_url,omitempty"`
	CommitteeCount      int      `json:"committee_count"`
	SubCommitteeCount   int      `json:"sub_committee_count"`
	SectorsServed       []string `json:"sectors_served,omitempty"`
	CurrentSectors      []string `json:"current_sectors,omitempty"`
	InternationalBoards []string `json:"international_boards,omitempty"`
	LitigationDetails   string   `json:"litigation_details,omitempty"`
}
