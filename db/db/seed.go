package db

import "time"

// Seed content shipped with the application. The memory backend inserts it
// unconditionally at construction; the file backend uses it as the default
// when a collection file does not exist yet; the postgres backend seeds it
// through a migration.

// DefaultFAQs returns the initial FAQ entries, order 1 through 5.
func DefaultFAQs() []FAQ {
	return []FAQ{
		{
			ID:       1,
			Question: "여행 계획은 언제까지 수정할 수 있나요?",
			Answer:   "여행 출발 3일 전까지는 언제든지 무료로 수정하실 수 있습니다. 그 이후에는 일부 변경 수수료가 발생할 수 있습니다.",
			Category: "여행정보",
			Order:    1,
		},
		{
			ID:       2,
			Question: "예산 초과 시 어떻게 하나요?",
			Answer:   "예산을 재조정하거나 일정 중 일부를 변경하여 예산에 맞춰 계획을 수정할 수 있습니다. AI가 자동으로 대안을 제안해드립니다.",
			Category: "예산관리",
			Order:    2,
		},
		{
			ID:       3,
			Question: "여행 중 긴급상황 시 연락처는?",
			Answer:   "24시간 긴급 연락처: 1588-0000 (한국어 지원) 또는 앱 내 긴급 채팅을 이용해주세요.",
			Category: "고객지원",
			Order:    3,
		},
		{
			ID:       4,
			Question: "여행 보험은 어떻게 가입하나요?",
			Answer:   "여행 계획 완료 후 보험 가입 옵션을 제공합니다. 여러 보험사와 제휴하여 최적의 상품을 추천해드립니다.",
			Category: "예약관련",
			Order:    4,
		},
		{
			ID:       5,
			Question: "단체 여행도 계획할 수 있나요?",
			Answer:   "네, 10명 이상의 단체 여행도 가능합니다. 단체 할인 혜택과 전담 상담원 서비스를 제공합니다.",
			Category: "예약관련",
			Order:    5,
		},
	}
}

// DefaultReviews returns the sample reviews shown before any user posts one.
func DefaultReviews() []Review {
	return []Review{
		{
			ID:          1,
			UserID:      1,
			Title:       "제주도 3박 4일 힐링 여행",
			Content:     "정말 완벽한 여행이었어요! YOLO에서 추천해준 일정대로 따라했는데 모든 것이 완벽했습니다. 특히 숨겨진 맛집들이 정말 대박이었어요.",
			Rating:      5,
			Destination: "제주도",
			Author:      "김**님",
			CreatedAt:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          2,
			UserID:      2,
			Title:       "서울 맛집 투어 2박 3일",
			Content:     "맛집 스타일로 계획한 서울 여행! 숨겨진 로컬 맛집들을 발견할 수 있어서 너무 좋았습니다. 예산도 정확하게 맞춰졌어요.",
			Rating:      4,
			Destination: "서울",
			Author:      "이**님",
			CreatedAt:   time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          3,
			UserID:      3,
			Title:       "경주 문화유산 탐방",
			Content:     "역사와 문화를 좋아해서 선택한 경주 여행. 체계적인 일정으로 모든 주요 유적지를 효율적으로 볼 수 있었습니다.",
			Rating:      5,
			Destination: "경주",
			Author:      "박**님",
			CreatedAt:   time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

// DemoUsername and DemoPassword identify the demo account ensured at server
// startup. The password is hashed before it reaches any store.
const (
	DemoUsername = "demo"
	DemoPassword = "demo123"
)
