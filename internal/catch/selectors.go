// Locator table for catch.co.kr. This is the single place to touch when
// the site's DOM changes; engine logic never hard-codes an expression.

package catch

import (
	"go-catch-automation/internal/engine"
	"go-catch-automation/internal/locator"
	"go-catch-automation/internal/view"
)

// logical ids owned by the facade (the engine's ids live in the engine package)
const (
	idLoginButton   = "login_button"
	idLoginID       = "login_id"
	idLoginPassword = "login_password"
	idLoginError    = "login_error"

	idRecruitMenu     = "recruit_menu"
	idJobCategory     = "job_category"
	idCategoryPanel   = "category_panel"
	idCategoryIT      = "category_it"
	idCategoryBigData = "category_bigdata"

	idDetailApply  = "detail_apply"
	idDetailIframe = "detail_iframe"

	idCompanySearchInput  = "company_search_input"
	idCompanySearchButton = "company_search_button"
	idCompanyResultLinks  = "company_result_links"
	idReviewTab           = "review_tab"
)

func xp(exprs ...string) []locator.Alternative {
	alts := make([]locator.Alternative, len(exprs))
	for i, e := range exprs {
		alts[i] = locator.Alternative{Kind: view.XPath, Expression: e}
	}
	return alts
}

func css(exprs ...string) []locator.Alternative {
	alts := make([]locator.Alternative, len(exprs))
	for i, e := range exprs {
		alts[i] = locator.Alternative{Kind: view.CSS, Expression: e}
	}
	return alts
}

// Selectors returns the locator spec for catch.co.kr
func Selectors() locator.Spec {
	return locator.Spec{
		// authentication
		idLoginButton:   xp("//a[contains(text(), '로그인')]"),
		idLoginID:       css("#id_login"),
		idLoginPassword: css("#pw_login"),
		idLoginError:    css(".error-message"),

		// navigation and category filter
		idRecruitMenu:     xp("//a[@href='/NCS/RecruitSearch']"),
		idJobCategory:     xp("//button[contains(@class, 'bt') and contains(text(), '직무')]"),
		idCategoryPanel:   xp("//div[contains(@class, 'cate2')]"),
		idCategoryIT:      xp("//button[contains(@class, 'bt')]//span[contains(text(), 'IT개발')]/.."),
		idCategoryBigData: xp("//button[contains(@class, 'bt')]//span[contains(text(), '빅데이터·AI')]/.."),

		// listing table
		engine.IDListingRows:       xp("//tbody//tr"),
		engine.IDListingTitle:      xp(".//p[contains(@class, 'subj2')]"),
		engine.IDListingCompany:    xp(".//p[contains(@class, 'name2')]"),
		engine.IDListingLink:       xp(".//a[contains(@href, 'RecruitInfoDetails')]"),
		engine.IDListingAttributes: xp(".//p[contains(@class, 'job')]//span"),
		engine.IDListingConditions: xp(".//p[contains(@class, 'cond')]"),
		engine.IDListingMeta:       xp(".//p[contains(@class, 'date2') or contains(@class, 'num_dday')]"),

		// fingerprint probe
		engine.IDFirstRowTitle: xp("//tbody//tr[1]//p[contains(@class, 'subj2')]"),

		// pagination
		engine.IDNextPage:   xp("//p[contains(@class, 'page3')]//a[contains(@class, 'ico next')]"),
		engine.IDPageNumber: xp("//p[contains(@class, 'page3')]//a[text()='%d']"),

		// job detail view
		engine.IDDetailCompany:     xp("//a[contains(@class, 'name') and contains(@class, 'gtm-recruitDetail-compInfo-click')]"),
		engine.IDDetailTitle:       xp("//h2[@class='subj']"),
		engine.IDDetailBasicInfo:   xp("//div[@class='group bg1']//p[@class='txt']"),
		engine.IDDetailDescription: xp("//div[@class='group bg2']//p[@class='txt']"),
		engine.IDDetailDeadline:    xp("//span[@class='num_dday']//span"),
		idDetailApply:              xp("//a[contains(@class, 'gtm-recruitDetail-apply-homepage')]"),
		idDetailIframe:             xp("//iframe[@title='채용상세']"),

		// company search
		idCompanySearchInput:  xp("//input[@placeholder='궁금한 기업을 검색해 보세요.']"),
		idCompanySearchButton: css("button.bt_sch"),
		idCompanyResultLinks:  xp("//ul[@class='list_corp_round']//li//p[@class='name']//a"),

		// company profile
		engine.IDCompanyName:           xp("//div[@class='name']//h2"),
		engine.IDCompanyIndustry:       xp("//span[contains(text(), '포털·플랫폼') or contains(text(), '은행·금융') or contains(text(), '게임') or contains(text(), '전기·전자')]"),
		engine.IDCompanySize:           xp("//div[@class='item type1']//p[@class='t1']"),
		engine.IDCompanyAddress:        xp("//table//tr//th[text()='주소']/following-sibling::td"),
		engine.IDCompanyHeadcount:      xp("//div[@class='item type2']//p[@class='t1']"),
		engine.IDCompanyRevenue:        xp("//div[@class='item type3']//p[@class='t1']"),
		engine.IDCompanyCEO:            xp("//table//tr//th[text()='대표자']/following-sibling::td"),
		engine.IDCompanyFounded:        xp("//table//tr//th[text()='개업일']/following-sibling::td"),
		engine.IDCompanyForm:           xp("//table//tr//th[text()='기업형태']/following-sibling::td"),
		engine.IDCompanyCredit:         xp("//table//tr//th[text()='신용등급']/following-sibling::td"),
		engine.IDCompanyTags:           xp("//div[@class='corp_info_base2']//p[@class='tag']//span"),
		engine.IDCompanyKeywords:       xp("//div[@class='corp_info_recom']//a[@class='bt']"),
		engine.IDCompanySalaryStart:    xp("//div[@class='corp_info_payinfo']//div[@class='box'][1]//span[@class='pay']"),
		engine.IDCompanySalaryAvg:      xp("//div[@class='corp_info_payinfo']//div[@class='box'][2]//span[@class='pay']"),
		engine.IDCompanySalaryIndustry: xp("//div[@class='corp_info_payinfo']//div[@class='box'][2]//p[@class='list'][2]//span[@class='pay']"),

		// employee reviews
		idReviewTab: xp("//div[@class='bot']//ul[@class='menu']//li//a[contains(text(), '현직자리뷰')]"),
		engine.IDReviewItems: xp(
			"//ul[@class='corp_review_list']//li",
			"//div[@class='corp_info_box']//ul//li",
		),
		engine.IDReviewStatus: xp(".//p[@class='state']"),
		engine.IDReviewInfo:   xp(".//div[@class='info']//p//span"),
		engine.IDReviewRating: xp(".//div[@class='rating_star2']//span[@class='fill']"),
		engine.IDReviewGood:   xp(".//p[@class='review good']//span[@class='t']"),
		engine.IDReviewBad:    xp(".//p[@class='review bad']//span[@class='t']"),
		engine.IDReviewDate:   xp(".//p[@class='bot']//span[@class='date']"),
		engine.IDReviewLikes:  xp(".//span[@class='like']//label"),
	}
}
