package entity

import "strings"

// EmergencyType is the category code stored on a broadcast.
type EmergencyType string

const (
	EmergencyTypeWater        EmergencyType = "water"
	EmergencyTypeElectricity  EmergencyType = "electricity"
	EmergencyTypeGas          EmergencyType = "gas"
	EmergencyTypeRoadWorks    EmergencyType = "road_works"
	EmergencyTypeSecurity     EmergencyType = "security"
	EmergencyTypeMedical      EmergencyType = "medical"
	EmergencyTypeAnnouncement EmergencyType = "announcement"
	EmergencyTypeEmergency    EmergencyType = "emergency"
	EmergencyTypeUtilities    EmergencyType = "utilities"
	EmergencyTypeGeneral      EmergencyType = "general"
	EmergencyTypeCustom       EmergencyType = "custom"
)

// String returns the string representation of the EmergencyType.
func (t EmergencyType) String() string {
	return string(t)
}

var emergencyTypeLabels = map[EmergencyType]string{
	EmergencyTypeWater:        "Вода",
	EmergencyTypeElectricity:  "Электричество",
	EmergencyTypeGas:          "Газ",
	EmergencyTypeRoadWorks:    "Дорожные работы",
	EmergencyTypeSecurity:     "Безопасность",
	EmergencyTypeMedical:      "Медицинская",
	EmergencyTypeAnnouncement: "Объявление",
	EmergencyTypeEmergency:    "Чрезвычайная ситуация",
	EmergencyTypeUtilities:    "Коммунальные услуги",
	EmergencyTypeGeneral:      "Общая информация",
	EmergencyTypeCustom:       "Другое",
}

// HistoryTypeOrder is the order of the type options in the history filter.
var HistoryTypeOrder = []EmergencyType{
	EmergencyTypeUtilities,
	EmergencyTypeWater,
	EmergencyTypeElectricity,
	EmergencyTypeGas,
	EmergencyTypeRoadWorks,
	EmergencyTypeSecurity,
	EmergencyTypeMedical,
	EmergencyTypeEmergency,
	EmergencyTypeAnnouncement,
	EmergencyTypeGeneral,
}

// Label returns the Russian display label, or the raw code for unknown types.
func (t EmergencyType) Label() string {
	if label, ok := emergencyTypeLabels[t]; ok {
		return label
	}

	return string(t)
}

// ParseEmergencyTypeLabel maps a history filter value to a type code.
// It accepts the Russian label or the code itself; ok is false for "Все" and unknown values.
func ParseEmergencyTypeLabel(value string) (EmergencyType, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}

	for code, label := range emergencyTypeLabels {
		if strings.EqualFold(label, value) || strings.EqualFold(string(code), value) {
			return code, true
		}
	}

	return "", false
}
