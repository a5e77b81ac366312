package domain

// Settings is the singleton module-toggle record. Saves replace the whole
// record; flags are never merged field by field.
type Settings struct {
	ModuleClients   bool `json:"module_clients"`
	ModuleSales     bool `json:"module_sales"`
	ModuleAnalytics bool `json:"module_analytics"`
	ModuleChat      bool `json:"module_chat"`
}

func DefaultSettings() Settings {
	return Settings{
		ModuleClients:   true,
		ModuleSales:     true,
		ModuleAnalytics: true,
		ModuleChat:      true,
	}
}

// ModuleNames lists the toggleable modules in navigation order.
var ModuleNames = []string{"clients", "sales", "analytics", "chat"}

// ModuleEnabled reports whether the named module is switched on. Names
// without a settings flag are always enabled, so unflagged navigation
// entries can never be hidden.
func (s Settings) ModuleEnabled(name string) bool {
	switch name {
	case "clients":
		return s.ModuleClients
	case "sales":
		return s.ModuleSales
	case "analytics":
		return s.ModuleAnalytics
	case "chat":
		return s.ModuleChat
	default:
		return true
	}
}
