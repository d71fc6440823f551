// pkg/catalog/schema.go
package catalog

// TemplateCatalog is the deployable list of outreach message templates the
// planner may reference by name. It ships as a JSON file next to the BPMN
// assets so campaign teams can evolve templates without a code change.
type TemplateCatalog struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Templates   []Template `json:"templates"`
}

type Template struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Channel     string   `json:"channel"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Names returns every template name in catalog order.
func (c *TemplateCatalog) Names() []string {
	names := make([]string, len(c.Templates))
	for i, t := range c.Templates {
		names[i] = t.Name
	}
	return names
}

// ForChannel returns the templates declared for the given channel.
func (c *TemplateCatalog) ForChannel(channel string) []Template {
	var out []Template
	for _, t := range c.Templates {
		if t.Channel == channel {
			out = append(out, t)
		}
	}
	return out
}
