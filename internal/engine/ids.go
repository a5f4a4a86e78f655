package engine

// Logical ids the engine resolves through the locator spec.
// The concrete expressions for the target site live in internal/catch.
const (
	// listing table
	IDListingRows       = "listing_rows"
	IDListingTitle      = "listing_title"   // row-relative
	IDListingCompany    = "listing_company" // row-relative
	IDListingLink       = "listing_link"    // row-relative
	IDListingAttributes = "listing_attributes"
	IDListingConditions = "listing_conditions"
	IDListingMeta       = "listing_meta"

	// fingerprint probe
	IDFirstRowTitle = "first_row_title"

	// pagination controls
	IDNextPage   = "next_page"
	IDPageNumber = "page_number" // templated with the target page number

	// job detail view
	IDDetailCompany     = "detail_company"
	IDDetailTitle       = "detail_title"
	IDDetailBasicInfo   = "detail_basic_info"
	IDDetailDescription = "detail_description"
	IDDetailDeadline    = "detail_deadline"

	// company profile view
	IDCompanyName           = "company_name"
	IDCompanyIndustry       = "company_industry"
	IDCompanySize           = "company_size"
	IDCompanyAddress        = "company_address"
	IDCompanyHeadcount      = "company_headcount"
	IDCompanyRevenue        = "company_revenue"
	IDCompanyCEO            = "company_ceo"
	IDCompanyFounded        = "company_founded"
	IDCompanyForm           = "company_form"
	IDCompanyCredit         = "company_credit"
	IDCompanyTags           = "company_tags"
	IDCompanyKeywords       = "company_keywords"
	IDCompanySalaryStart    = "company_salary_start"
	IDCompanySalaryAvg      = "company_salary_avg"
	IDCompanySalaryIndustry = "company_salary_industry"

	// employee reviews
	IDReviewItems  = "review_items"
	IDReviewStatus = "review_status" // item-relative, like the rest below
	IDReviewInfo   = "review_info"
	IDReviewRating = "review_rating"
	IDReviewGood   = "review_good"
	IDReviewBad    = "review_bad"
	IDReviewDate   = "review_date"
	IDReviewLikes  = "review_likes"
)
