package engine

import (
	"context"
	"strings"

	"go-catch-automation/internal/view"
)

// Detail extracts the static fields of a job detail view. Every field is
// independently tolerant: a missing element leaves its field empty.
// ApplyURL and RawContent involve navigation and are filled in by the
// session facade, not here.
func (x *Extractor) Detail(ctx context.Context, v view.View) DetailRecord {
	rec := DetailRecord{
		CompanyName: x.tryText(ctx, v, IDDetailCompany),
		JobTitle:    x.tryText(ctx, v, IDDetailTitle),
		Description: x.tryText(ctx, v, IDDetailDescription),
		Deadline:    x.tryText(ctx, v, IDDetailDeadline),
	}

	info := ParseBasicInfo(x.tryText(ctx, v, IDDetailBasicInfo))
	rec.CareerLevel = info.CareerLevel
	rec.JobType = info.JobType
	rec.Education = info.Education
	rec.Location = info.Location
	return rec
}

// Company extracts the profile fields of a company detail view.
// Reviews live behind a tab switch and are extracted separately.
func (x *Extractor) Company(ctx context.Context, v view.View) CompanyRecord {
	return CompanyRecord{
		Name:                  x.tryText(ctx, v, IDCompanyName),
		Industry:              x.tryText(ctx, v, IDCompanyIndustry),
		SizeClass:             x.tryText(ctx, v, IDCompanySize),
		Address:               stripMapButton(x.tryText(ctx, v, IDCompanyAddress)),
		Headcount:             x.tryText(ctx, v, IDCompanyHeadcount),
		Revenue:               x.tryText(ctx, v, IDCompanyRevenue),
		Executive:             x.tryText(ctx, v, IDCompanyCEO),
		Founded:               x.tryText(ctx, v, IDCompanyFounded),
		LegalForm:             x.tryText(ctx, v, IDCompanyForm),
		CreditRating:          x.tryText(ctx, v, IDCompanyCredit),
		Tags:                  x.tryTexts(v, IDCompanyTags),
		Keywords:              x.tryTexts(v, IDCompanyKeywords),
		StartingSalary:        x.tryText(ctx, v, IDCompanySalaryStart),
		AverageSalary:         x.tryText(ctx, v, IDCompanySalaryAvg),
		IndustryAverageSalary: x.tryText(ctx, v, IDCompanySalaryIndustry),
		Reviews:               []ReviewRecord{},
	}
}

// Reviews extracts the employee review list from the review tab.
// Review-level failures skip only that review.
func (x *Extractor) Reviews(ctx context.Context, v view.View) []ReviewRecord {
	items, err := x.res.ResolveAll(v, IDReviewItems)
	if err != nil || len(items) == 0 {
		return []ReviewRecord{}
	}

	reviews := make([]ReviewRecord, 0, len(items))
	for _, item := range items {
		if _, err := item.Text(); err != nil {
			continue
		}
		reviews = append(reviews, ReviewRecord{
			EmploymentStatus: x.tryText(ctx, item, IDReviewStatus),
			EmployeeInfo:     x.tryTexts(item, IDReviewInfo),
			Rating:           x.tryText(ctx, item, IDReviewRating),
			PositiveText:     x.tryText(ctx, item, IDReviewGood),
			NegativeText:     x.tryText(ctx, item, IDReviewBad),
			Date:             x.tryText(ctx, item, IDReviewDate),
			LikeCount:        x.tryText(ctx, item, IDReviewLikes),
		})
	}
	return reviews
}

// the address cell embeds the text of a map button
func stripMapButton(address string) string {
	return strings.TrimSpace(strings.ReplaceAll(address, "지도", ""))
}
