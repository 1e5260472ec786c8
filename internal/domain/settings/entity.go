package settings

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func IsValidTheme(t Theme) bool {
	return t == ThemeLight || t == ThemeDark
}

// Settings is the single facility-wide configuration record.
type Settings struct {
	Departments          []string
	NotificationsEnabled bool
	Theme                Theme
}

// Defaults returns the configuration used when nothing has been stored yet.
func Defaults() Settings {
	return Settings{
		Departments:          []string{"Production", "HR", "IT", "Finance", "Logistics", "Quality"},
		NotificationsEnabled: true,
		Theme:                ThemeLight,
	}
}
