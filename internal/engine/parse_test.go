package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBasicInfo(t *testing.T) {
	info := ParseBasicInfo("경력 3년 이상 | 정규직 | 대학교 졸업 | 서울 강남구")
	assert.Equal(t, "경력 3년 이상", info.CareerLevel)
	assert.Equal(t, "정규직", info.JobType)
	assert.Equal(t, "대학교 졸업", info.Education)
	assert.Equal(t, "서울 강남구", info.Location)
}

func TestParseBasicInfoPartial(t *testing.T) {
	// only two segments carry a recognizable keyword
	info := ParseBasicInfo("신입 | 계약직")
	assert.Equal(t, "신입", info.CareerLevel)
	assert.Equal(t, "계약직", info.JobType)
	assert.Equal(t, "", info.Education)
	assert.Equal(t, "", info.Location)
}

func TestParseBasicInfoEmpty(t *testing.T) {
	assert.Equal(t, BasicInfo{}, ParseBasicInfo(""))
	assert.Equal(t, BasicInfo{}, ParseBasicInfo("   "))
}
