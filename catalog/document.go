package catalog

type ItemDocument struct {
	Id           string `yaml:"id"`
	Name         string `yaml:"name"`
	MaxStackSize uint32 `yaml:"maxStackSize"`
}

type GroupDocument struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

type Document struct {
	Items      []ItemDocument  `yaml:"items"`
	Categories []GroupDocument `yaml:"categories"`
}
