package engine

import "strings"

// BasicInfo is the parsed form of the detail view's pipe-delimited
// summary line ("경력 3년 | 정규직 | 학력무관 | 서울 강남구").
type BasicInfo struct {
	CareerLevel string
	JobType     string
	Education   string
	Location    string
}

// ParseBasicInfo splits the blob on the pipe separator and assigns each
// field from the first segment containing its domain keyword. This is a
// keyword heuristic against site-authored free text: it is brittle by
// nature and intentionally not hardened against arbitrary input. A field
// with no matching segment stays empty.
func ParseBasicInfo(blob string) BasicInfo {
	info := BasicInfo{}
	blob = CleanText(blob)
	if blob == "" {
		return info
	}

	segments := strings.Split(blob, "|")
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}

	info.CareerLevel = firstContaining(segments, "경력", "신입")
	info.JobType = firstContaining(segments, "정규직", "계약직", "인턴")
	info.Education = firstContaining(segments, "학력", "졸업")
	info.Location = firstContaining(segments, "구", "시", "도")
	return info
}

// firstContaining returns the first segment containing any keyword
func firstContaining(segments []string, keywords ...string) string {
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(seg, kw) {
				return seg
			}
		}
	}
	return ""
}
