package models

// Resource is an entry in the resource library.
type Resource struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Link        string `yaml:"link" json:"link"`
	Category    string `yaml:"category" json:"category"`
}

// ResourceGroup is a category with its resources, in first-seen order.
type ResourceGroup struct {
	Category  string
	Resources []Resource
}

// GroupResources buckets resources by category, keeping the order in which
// categories first appear.
func GroupResources(resources []Resource) []ResourceGroup {
	var groups []ResourceGroup
	index := make(map[string]int)
	for _, r := range resources {
		i, ok := index[r.Category]
		if !ok {
			i = len(groups)
			index[r.Category] = i
			groups = append(groups, ResourceGroup{Category: r.Category})
		}
		groups[i].Resources = append(groups[i].Resources, r)
	}
	return groups
}
