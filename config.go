package dashboard

import (
	"os"

	"github.com/luno/jettison/errors"
	"gopkg.in/yaml.v3"
)

// definitionConfig is the YAML shape of a workflow definition plus its saved
// filters. Keeping the definition in one config file is what guarantees a
// single definition governs every view of a record type.
type definitionConfig struct {
	Name        string   `yaml:"name"`
	StageGroups []string `yaml:"stage_groups"`
	Statuses    []struct {
		Code         string   `yaml:"code"`
		Label        string   `yaml:"label"`
		Color        string   `yaml:"color"`
		StageGroup   string   `yaml:"stage_group"`
		AllowedNext  []string `yaml:"allowed_next"`
		RequiredRole string   `yaml:"required_role"`
	} `yaml:"statuses"`
	SavedFilters []struct {
		Name     string   `yaml:"name"`
		Statuses []string `yaml:"statuses"`
	} `yaml:"saved_filters"`
}

// ParseDefinition builds a WorkflowDefinition and its saved filters from
// YAML. Invalid definitions fail with the same taxonomy Build uses, so a
// broken config never reaches the engine.
func ParseDefinition(data []byte) (*WorkflowDefinition, []SavedFilter, error) {
	var config definitionConfig
	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unmarshal workflow definition config")
	}

	groups := make([]StageGroup, 0, len(config.StageGroups))
	for _, group := range config.StageGroups {
		groups = append(groups, StageGroup(group))
	}

	builder := NewDefinition(config.Name, groups...)
	for _, status := range config.Statuses {
		next := make([]Status, 0, len(status.AllowedNext))
		for _, to := range status.AllowedNext {
			next = append(next, Status(to))
		}

		builder.AddStatus(StatusDescriptor{
			Code:         Status(status.Code),
			Label:        status.Label,
			Color:        status.Color,
			StageGroup:   StageGroup(status.StageGroup),
			AllowedNext:  next,
			RequiredRole: Role(status.RequiredRole),
		})
	}

	definition, err := builder.Build()
	if err != nil {
		return nil, nil, err
	}

	filters := make([]SavedFilter, 0, len(config.SavedFilters))
	for _, filter := range config.SavedFilters {
		statuses := make([]Status, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			if _, err := definition.Descriptor(Status(status)); err != nil {
				return nil, nil, err
			}

			statuses = append(statuses, Status(status))
		}

		filters = append(filters, SavedFilter{Name: filter.Name, Statuses: statuses})
	}

	return definition, filters, nil
}

// LoadDefinition reads and parses a workflow definition config file.
func LoadDefinition(path string) (*WorkflowDefinition, []SavedFilter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "read workflow definition config")
	}

	return ParseDefinition(data)
}
