package layout

// DefaultBaseDir is used when neither the layout, the config, nor the
// command line names a base directory.
const DefaultBaseDir = "src"

// Layout is a scaffold specification: a named, versioned, ordered tree of
// directories and the empty files to create inside each.
type Layout struct {
	Name        string  `yaml:"name" json:"name"`
	Version     string  `yaml:"version" json:"version"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Requires    string  `yaml:"requires,omitempty" json:"requires,omitempty"`
	BaseDir     string  `yaml:"base_dir,omitempty" json:"base_dir,omitempty"`
	Tree        []Entry `yaml:"tree" json:"tree"`
}

// Entry maps one relative directory to the file names created inside it.
// Dir uses forward-slash segments and may be "." for the base directory
// itself. Entries and file names are applied in declaration order.
type Entry struct {
	Dir   string   `yaml:"dir" json:"dir"`
	Files []string `yaml:"files,omitempty" json:"files,omitempty"`
}
