package redis

const (
	DefaultIndexName = "ruleguard_rules"
	DefaultDimension = 1536
	DefaultListLimit = 10000
)

type Config struct {
	IndexName string   `mapstructure:"index_name"`
	Dimension int      `mapstructure:"dimension"`
	TagFields []string `mapstructure:"tag_fields"`
	ListLimit int      `mapstructure:"list_limit"`
	Recreate  bool     `mapstructure:"recreate"`
}

func (c Config) withDefaults() Config {
	if c.IndexName == "" {
		c.IndexName = DefaultIndexName
	}
	if c.Dimension <= 0 {
		c.Dimension = DefaultDimension
	}
	if len(c.TagFields) == 0 {
		c.TagFields = []string{"owner", "scope"}
	}
	if c.ListLimit <= 0 {
		c.ListLimit = DefaultListLimit
	}
	return c
}

func (c Config) keyPrefix() string {
	return c.IndexName + ":"
}

func (c Config) isTagField(name string) bool {
	for _, f := range c.TagFields {
		if f == name {
			return true
		}
	}
	return false
}
