package gateway

import (
	"fmt"
	"strconv"
	"strings"

	"independent-director/pkg/models"
)

// The backend keys director records either by the human-readable sheet
// headers or by lowercase keys depending on which script revision wrote the
// row. Each canonical field lists every accepted alias, checked in order.
var directorAliases = map[string][]string{
	"id":                  {"ID", "id"},
	"name":                {"Full Name", "name"},
	"email":               {"Email", "email"},
	"industry":            {"Industry", "industry"},
	"description":         {"Description", "description"},
	"logoUrl":             {"LogoURL", "logourl"},
	"age":                 {"Age", "age"},
	"dinNumber":           {"DIN Number", "dinnumber"},
	"isCurrentDirector":   {"Currently Serving as Independent Director", "iscurrentdirector"},
	"yearsOfExperience":   {"Total Years of Experience as Independent Director", "yearsofexperience"},
	"isIODCertified":      {"Certified Corporate Director from IOD", "isiodcertified"},
	"iodCertificateUrl":   {"Copy of IOD Certificate", "iodcertificateurl"},
	"committeeCount":      {"Member of Number of Committees", "committeecount"},
	"subCommitteeCount":   {"Member of Number of Sub-Committees", "subcommitteecount"},
	"sectorsServed":       {"Sectors Served", "sectorsserved"},
	"currentSectors":      {"Current Sector(s) Serving", "currentsectors"},
	"internationalBoards": {"Any International Companies You Are On Board", "internationalboards"},
	"litigationDetails":   {"Any Litigation or Board Governance Enquiries", "litigationdetails"},
}

func pick(rec map[string]any, field string) any {
	for _, key := range directorAliases[field] {
		if v, ok := rec[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// asString coerces scalar cell values to a trimmed string
func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		if s {
			return "Yes"
		}
		return "No"
	default:
		return strings.TrimSpace(fmt.Sprint(s))
	}
}

// asInt coerces JSON numbers and numeric strings; anything else is zero
func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	case int:
		return n
	}
	return 0
}

// asYes decodes the sheet's literal "Yes"/"No" convention
func asYes(v any) bool {
	return strings.EqualFold(asString(v), "yes")
}

// asList splits a comma-separated cell into trimmed, non-empty items
func asList(v any) []string {
	raw := asString(v)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// DecodeDirector converts one backend record into a typed Director. A record
// with no resolvable name is rejected with a DecodeError rather than
// silently defaulted.
func DecodeDirector(rec map[string]any) (models.Director, error) {
	name := asString(pick(rec, "name"))
	if name == "" {
		return models.Director{}, &DecodeError{Entity: "director", Field: "name", Reason: "is missing"}
	}

	return models.Director{
		ID:                  asString(pick(rec, "id")),
		Name:                name,
		Email:               asString(pick(rec, "email")),
		Industry:            defaultString(asString(pick(rec, "industry")), "N/A"),
		Description:         asString(pick(rec, "description")),
		LogoURL:             asString(pick(rec, "logoUrl")),
		Age:                 asInt(pick(rec, "age")),
		DINNumber:           asString(pick(rec, "dinNumber")),
		IsCurrentDirector:   asYes(pick(rec, "isCurrentDirector")),
		YearsOfExperience:   asInt(pick(rec, "yearsOfExperience")),
		IsIODCertified:      asYes(pick(rec, "isIODCertified")),
		IODCertificateURL:   asString(pick(rec, "iodCertificateUrl")),
		CommitteeCount:      asInt(pick(rec, "committeeCount")),
		SubCommitteeCount:   asInt(pick(rec, "subCommitteeCount")),
		SectorsServed:       asList(pick(rec, "sectorsServed")),
		CurrentSectors:      asList(pick(rec, "currentSectors")),
		InternationalBoards: asList(pick(rec, "internationalBoards")),
		LitigationDetails:   asString(pick(rec, "litigationDetails")),
	}, nil
}

// NormalizeDirectors decodes a fetched record set, dropping records that
// fail to decode and suffixing duplicate identifiers so IDs are unique
// within the result. Suffix stability across fetches is not guaranteed.
func NormalizeDirectors(records []map[string]any) ([]models.Director, []error) {
	directors := make([]models.Director, 0, len(records))
	var dropped []error

	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		d, err := DecodeDirector(rec)
		if err != nil {
			dropped = append(dropped, err)
			continue
		}

		if _, dup := seen[d.ID]; dup {
			d.ID = fmt.Sprintf("%s_%d", d.ID, i)
		}
		seen[d.ID] = struct{}{}
		directors = append(directors, d)
	}

	return directors, dropped
}

// normalizeJob maps a backend job row. The fee is always the client-side
// constant and a missing status defaults to open.
func normalizeJob(rec map[string]any, fee int) models.Job {
	createdAt := asString(rec["posted"])
	if createdAt == "" {
		createdAt = asString(rec["date"])
	}

	return models.Job{
		ID:                 asString(rec["id"]),
		Title:              asString(rec["title"]),
		Company:            asString(rec["company"]),
		Industry:           asString(rec["industry"]),
		RoleType:           models.RoleType(asString(rec["type"])),
		ExperienceRequired: asString(rec["experience"]),
		Location:           asString(rec["location"]),
		Description:        asString(rec["description"]),
		Responsibilities:   asString(rec["responsibilities"]),
		Expectations:       asString(rec["expectations"]),
		Remuneration:       asString(rec["remuneration"]),
		ApplicationFee:     fee,
		Status:             models.JobOpen,
		CreatedAt:          createdAt,
		PosterEmail:        asString(rec["posteremail"]),
	}
}

// normalizeApplication maps a stored application row, overriding the amount
// with the fee constant
func normalizeApplication(rec map[string]any, fee int) models.JobApplication {
	return models.JobApplication{
		ID:                asString(rec["id"]),
		ApplicationID:     asString(rec["applicationId"]),
		JobID:             asString(rec["jobId"]),
		JobTitle:          asString(rec["jobTitle"]),
		CompanyName:       asString(rec["companyName"]),
		DirectorEmail:     asString(rec["directorEmail"]),
		ApplicantName:     asString(rec["applicantName"]),
		ApplicantEmail:    asString(rec["applicantEmail"]),
		ApplicantPhone:    asString(rec["applicantPhone"]),
		ApplicantIndustry: asString(rec["applicantIndustry"]),
		Experience:        asString(rec["experience"]),
		CurrentLocation:   asString(rec["currentLocation"]),
		PreferredLocation: asString(rec["preferredLocation"]),
		CurrentCTC:        asString(rec["currentCTC"]),
		ExpectedCTC:       asString(rec["expectedCTC"]),
		NoticePeriod:      asString(rec["noticePeriod"]),
		ResumeURL:         asString(rec["resumeUrl"]),
		LinkedinURL:       asString(rec["linkedinUrl"]),
		Summary:           asString(rec["summary"]),
		Message:           asString(rec["message"]),
		PaymentStatus:     asString(rec["paymentStatus"]),
		Amount:            fee,
		PaymentID:         asString(rec["paymentId"]),
		PaymentMethod:     asString(rec["paymentMethod"]),
		TransactionStatus: asString(rec["transactionStatus"]),
		PaymentDate:       asString(rec["paymentDate"]),
		RefundStatus:      asString(rec["refundStatus"]),
		Status:            asString(rec["status"]),
		AppliedFrom:       asString(rec["appliedFrom"]),
		AppliedAt:         asString(rec["appliedAt"]),
		UpdatedAt:         asString(rec["updatedAt"]),
	}
}

// normalizeCertification maps a stored certification row
func normalizeCertification(rec map[string]any) models.CertificationApplication {
	return models.CertificationApplication{
		FullName:             asString(rec["fullName"]),
		Email:                asString(rec["email"]),
		Mobile:               asString(rec["mobile"]),
		CityCountry:          asString(rec["cityCountry"]),
		YearsOfExperience:    asString(rec["yearsOfExperience"]),
		Designation:          asString(rec["designation"]),
		IndustryExpertise:    asString(rec["industryExpertise"]),
		FunctionalExpertise:  asString(rec["functionalExpertise"]),
		PriorBoardExperience: asString(rec["priorBoardExperience"]),
		InterestedRole:       asString(rec["interestedRole"]),
		AreasOfInterest:      asString(rec["areasOfInterest"]),
		DIN:                  asString(rec["din"]),
		PAN:                  asString(rec["pan"]),
		MCARegistered:        asString(rec["mcaRegistered"]),
		WillingToTest:        asString(rec["willingToTest"]),
		CVURL:                asString(rec["cvUrl"]),
		InterestStatement:    asString(rec["interestStatement"]),
		PaymentID:            asString(rec["paymentId"]),
	}
}

// certificationPayload builds the backend-facing submission body
func certificationPayload(app models.CertificationApplication) map[string]any {
	return map[string]any{
		"fullName":             app.FullName,
		"email":                app.Email,
		"mobile":               app.Mobile,
		"cityCountry":          app.CityCountry,
		"yearsOfExperience":    app.YearsOfExperience,
		"designation":          app.Designation,
		"industryExpertise":    app.IndustryExpertise,
		"functionalExpertise":  app.FunctionalExpertise,
		"priorBoardExperience": app.PriorBoardExperience,
		"interestedRole":       app.InterestedRole,
		"areasOfInterest":      app.AreasOfInterest,
		"din":                  app.DIN,
		"pan":                  app.PAN,
		"mcaRegistered":        app.MCARegistered,
		"willingToTest":        app.WillingToTest,
		"cvUrl":                app.CVURL,
		"interestStatement":    app.InterestStatement,
		"paymentId":            app.PaymentID,
	}
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
