package entity

// Placeholders recognised in message templates.
const (
	PlaceholderStartTime = "{start_time}"
	PlaceholderEndTime   = "{end_time}"
	PlaceholderLocation  = "{location}"
	PlaceholderReason    = "{reason}"
)

// QuickTemplate is one entry of the quick-send catalog.
type QuickTemplate struct {
	Type     EmergencyType
	Title    string
	Template string
	Priority Priority
	Icon     string
}

// HasPlaceholder reports whether the canned template contains the placeholder.
func (t QuickTemplate) HasPlaceholder(placeholder string) bool {
	return containsPlaceholder(t.Template, placeholder)
}

// NeedsTimeRange reports whether start and end time fields are shown.
func (t QuickTemplate) NeedsTimeRange() bool {
	return t.HasPlaceholder(PlaceholderStartTime) || t.HasPlaceholder(PlaceholderEndTime)
}

var quickTemplates = map[EmergencyType]QuickTemplate{
	EmergencyTypeWater: {
		Type:     EmergencyTypeWater,
		Title:    "💧 Отключение воды",
		Template: "🚰 ВНИМАНИЕ!\nОтключение воды с {start_time} до {end_time}\nПричина: {reason}\nПриносим извинения за неудобства.",
		Priority: PriorityMedium,
		Icon:     "💧",
	},
	EmergencyTypeElectricity: {
		Type:     EmergencyTypeElectricity,
		Title:    "⚡ Отключение электричества",
		Template: "⚡ ВНИМАНИЕ!\nОтключение электричества с {start_time} до {end_time}\nПричина: {reason}",
		Priority: PriorityMedium,
		Icon:     "⚡",
	},
	EmergencyTypeGas: {
		Type:     EmergencyTypeGas,
		Title:    "🔥 Отключение газа",
		Template: "🔥 ВНИМАНИЕ!\nОтключение газа с {start_time} до {end_time}\nПричина: {reason}\nСоблюдайте меры безопасности!",
		Priority: PriorityHigh,
		Icon:     "🔥",
	},
	EmergencyTypeRoadWorks: {
		Type:     EmergencyTypeRoadWorks,
		Title:    "🚧 Дорожные работы",
		Template: "🚧 Дорожные работы\nМесто: {location}\nВремя: с {start_time} до {end_time}\nПросьба выбрать альтернативные маршруты.",
		Priority: PriorityLow,
		Icon:     "🚧",
	},
	EmergencyTypeEmergency: {
		Type:     EmergencyTypeEmergency,
		Title:    "🚨 Чрезвычайная ситуация",
		Priority: PriorityHigh,
		Icon:     "🚨",
	},
	EmergencyTypeAnnouncement: {
		Type:     EmergencyTypeAnnouncement,
		Title:    "📢 Срочное объявление",
		Priority: PriorityMedium,
		Icon:     "📢",
	},
	EmergencyTypeUtilities: {
		Type:     EmergencyTypeUtilities,
		Title:    "💧 Коммунальные услуги",
		Priority: PriorityMedium,
		Icon:     "💧",
	},
}

// SidebarQuickTypes are the quick actions listed in the sidebar, in display order.
var SidebarQuickTypes = []EmergencyType{
	EmergencyTypeWater,
	EmergencyTypeElectricity,
	EmergencyTypeGas,
	EmergencyTypeRoadWorks,
	EmergencyTypeEmergency,
	EmergencyTypeAnnouncement,
}

// ResolveQuickTemplate returns the catalog entry for the type. Unknown types resolve to the
// urgent announcement entry.
func ResolveQuickTemplate(t EmergencyType) QuickTemplate {
	if tpl, ok := quickTemplates[t]; ok {
		return tpl
	}

	return quickTemplates[EmergencyTypeAnnouncement]
}

// QuickTemplates returns a copy of the whole catalog.
func QuickTemplates() map[EmergencyType]QuickTemplate {
	out := make(map[EmergencyType]QuickTemplate, len(quickTemplates))
	for k, v := range quickTemplates {
		out[k] = v
	}

	return out
}

// CustomCategory is one option of the custom-send category list.
type CustomCategory struct {
	Name  string
	Title string
}

// CustomCategories is the fixed category list of the custom-send form.
var CustomCategories = []CustomCategory{
	{Name: "Utilities", Title: "Коммунальные услуги"},
	{Name: "Road works", Title: "Дорожные работы"},
	{Name: "Security", Title: "Безопасность"},
	{Name: "Medical", Title: "Медицинская"},
	{Name: "General", Title: "Общая информация"},
}

// Code derives the stored emergency type: lower-cased, spaces replaced by underscores.
func (c CustomCategory) Code() EmergencyType {
	return CategoryCode(c.Name)
}
