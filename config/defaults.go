package config

const (
	defaultAuthCookieName     = "access_token"
	defaultSmsMaxLength       = 160
	defaultCounterWarnAt      = 120
	defaultRecentLimit        = 10
	defaultPreviewLength      = 80
	defaultAvgResponseMinutes = 3.5
	defaultStatsWindowDays    = 30
	defaultTimeZone           = "Asia/Tashkent"
)

// PermissionAll grants access to every feature.
const PermissionAll = "all"

func defaultRoles() map[string][]string {
	return map[string][]string{
		"admin":     {PermissionAll},
		"chairman":  {"citizens", "meetings", "sms", "emergency", "points", "reports"},
		"secretary": {"citizens", "meetings", "sms", "reports"},
		"operator":  {"citizens", "sms"},
	}
}

func defaultAreas() []string {
	return []string{"ул. Навои", "ул. Амира Темура", "ул. Мустакиллик", "ул. Бунёдкор"}
}

func defaultAgeGroups() []string {
	return []string{"18-30", "31-50", "51-70", "70+"}
}

func withAuthDefaults(cfg *AuthConfig) *AuthConfig {
	if cfg == nil {
		cfg = &AuthConfig{}
	}
	if cfg.CookieName == "" {
		cfg.CookieName = defaultAuthCookieName
	}
	if len(cfg.Roles) == 0 {
		cfg.Roles = defaultRoles()
	}

	return cfg
}

func withEmergencyDefaults(cfg *EmergencyConfig) *EmergencyConfig {
	if cfg == nil {
		cfg = &EmergencyConfig{}
	}
	if cfg.SmsMaxLength <= 0 {
		cfg.SmsMaxLength = defaultSmsMaxLength
	}
	if cfg.CounterLimitAt <= 0 {
		cfg.CounterLimitAt = cfg.SmsMaxLength
	}
	if cfg.CounterWarnAt <= 0 || cfg.CounterWarnAt > cfg.CounterLimitAt {
		cfg.CounterWarnAt = min(defaultCounterWarnAt, cfg.CounterLimitAt)
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = defaultRecentLimit
	}
	if cfg.PreviewLength <= 0 {
		cfg.PreviewLength = defaultPreviewLength
	}
	if cfg.AvgResponseMinutes <= 0 {
		cfg.AvgResponseMinutes = defaultAvgResponseMinutes
	}
	if cfg.StatsWindowDays <= 0 {
		cfg.StatsWindowDays = defaultStatsWindowDays
	}
	if len(cfg.Areas) == 0 {
		cfg.Areas = defaultAreas()
	}
	if len(cfg.AgeGroups) == 0 {
		cfg.AgeGroups = defaultAgeGroups()
	}
	if cfg.TimeZone == "" {
		cfg.TimeZone = defaultTimeZone
	}

	return cfg
}
