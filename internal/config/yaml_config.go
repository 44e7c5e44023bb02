package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mindhub/internal/chatbot"
	"mindhub/internal/models"
	"mindhub/internal/validation"
)

// ContentConfig represents the structure of the content.yaml file.
// Every section is optional; an omitted section keeps the built-in table.
type ContentConfig struct {
	Chatbot     ChatbotConfig       `yaml:"chatbot"`
	Resources   []models.Resource   `yaml:"resources"`
	ForumTopics []models.ForumTopic `yaml:"forum_topics"`
}

// ChatbotConfig overrides the reply table.
type ChatbotConfig struct {
	Rules    []chatbot.Rule `yaml:"rules"`
	Defaults []string       `yaml:"defaults"`
}

// LoadContent loads the YAML content file at path.
// Returns nil without error if the file doesn't exist.
func LoadContent(path string) (*ContentConfig, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Content file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg ContentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for _, r := range cfg.Resources {
		if ok, msg := validation.ValidateResourceLink(r.Link); !ok {
			return nil, fmt.Errorf("%s: resource %q: %s", path, r.Title, msg)
		}
	}

	return &cfg, nil
}

// ChatRules returns the configured rules or the built-in table.
func (c *ContentConfig) ChatRules() []chatbot.Rule {
	if c == nil || len(c.Chatbot.Rules) == 0 {
		return chatbot.DefaultRules()
	}
	return c.Chatbot.Rules
}

// ChatDefaults returns the configured default replies or the built-in pool.
func (c *ContentConfig) ChatDefaults() []string {
	if c == nil || len(c.Chatbot.Defaults) == 0 {
		return chatbot.DefaultResponses()
	}
	return c.Chatbot.Defaults
}

// GetResources returns the configured resources or fallback.
func (c *ContentConfig) GetResources(fallback []models.Resource) []models.Resource {
	if c == nil || len(c.Resources) == 0 {
		return fallback
	}
	return c.Resources
}

// GetForumTopics returns the configured topics or fallback.
func (c *ContentConfig) GetForumTopics(fallback []models.ForumTopic) []models.ForumTopic {
	if c == nil || len(c.ForumTopics) == 0 {
		return fallback
	}
	return c.ForumTopics
}
