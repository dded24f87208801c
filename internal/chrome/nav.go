package chrome

// NavItem is one entry of the shared navigation shell. Paths are
// resolved by the surrounding application's routing layer; the chrome
// declares them and never serves them.
type NavItem struct {
	ID    string
	Label string
	Path  string
}

// Nav returns the navigation items in display order.
func Nav() []NavItem {
	return []NavItem{
		{ID: "home", Label: "홈", Path: "/"},
		{ID: "heatmap", Label: "발전량 히트맵", Path: "/heatmap"},
		{ID: "system-design", Label: "시스템 설계", Path: "/design"},
		{ID: "data-download", Label: "데이터 다운로드", Path: "/download"},
		{ID: "help", Label: "도움말", Path: "/help"},
		{ID: "about", Label: "소개", Path: "/about"},
	}
}

// FooterText is the shared footer line.
const FooterText = "태양광 발전량 예측 시스템 © 2026"
