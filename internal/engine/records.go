package engine

// ListingRecord is one row of the recruit listing table.
// Any field may be empty: extraction failures at field granularity are
// tolerated, not fatal. Immutable once returned.
type ListingRecord struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	JobInfo     []string `json:"job_info"`
	Conditions  []string `json:"conditions"`
	PostingMeta []string `json:"registration_info"`
	URL         string   `json:"url"`
	Page        int      `json:"page"`
}

// DetailRecord is the structured content of one job detail view
type DetailRecord struct {
	CompanyName string `json:"company_name"`
	JobTitle    string `json:"job_title"`
	JobType     string `json:"job_type"`
	Location    string `json:"location"`
	CareerLevel string `json:"career_level"`
	Education   string `json:"education"`
	Description string `json:"job_description"`
	ApplyURL    string `json:"apply_url"`
	Deadline    string `json:"deadline"`
	RawContent  string `json:"full_content"`
}

// CompanyRecord is a company profile page plus its employee reviews
type CompanyRecord struct {
	Name                  string         `json:"company_name"`
	Industry              string         `json:"industry"`
	SizeClass             string         `json:"company_type"`
	Address               string         `json:"location"`
	Headcount             string         `json:"employee_count"`
	Revenue               string         `json:"revenue"`
	Executive             string         `json:"ceo"`
	Founded               string         `json:"establishment_date"`
	LegalForm             string         `json:"company_form"`
	CreditRating          string         `json:"credit_rating"`
	Tags                  []string       `json:"tags"`
	Keywords              []string       `json:"recommendation_keywords"`
	StartingSalary        string         `json:"starting_salary"`
	AverageSalary         string         `json:"average_salary"`
	IndustryAverageSalary string         `json:"industry_average_salary"`
	Reviews               []ReviewRecord `json:"reviews"`
}

// ReviewRecord is one employee review on a company profile
type ReviewRecord struct {
	EmploymentStatus string   `json:"employee_status"`
	EmployeeInfo     []string `json:"employee_info"`
	Rating           string   `json:"rating"`
	PositiveText     string   `json:"good_points"`
	NegativeText     string   `json:"bad_points"`
	Date             string   `json:"review_date"`
	LikeCount        string   `json:"likes"`
}

// TerminationReason says why a collection run stopped
type TerminationReason string

const (
	// TerminateCap: the configured page cap was reached
	TerminateCap TerminationReason = "cap"
	// TerminateNoMoreControls: neither a next button nor the next numbered button resolved
	TerminateNoMoreControls TerminationReason = "noMoreControls"
	// TerminateTimeout: an advance was triggered but no content change was observed in time
	TerminateTimeout TerminationReason = "timeout"
	// TerminateNoChange: content looked changed during the poll but settled back identical
	TerminateNoChange TerminationReason = "noChange"
	// TerminateError: the session failed mid-run; accumulated records are still returned
	TerminateError TerminationReason = "error"
)

// CollectResult is the partial-success contract of a pagination run:
// whatever was accumulated is always present, even when Reason is error.
type CollectResult struct {
	Records      []ListingRecord
	PagesVisited int
	SkippedRows  int
	Reason       TerminationReason
	Err          error
}
