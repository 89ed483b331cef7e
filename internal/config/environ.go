package config

import (
	"strconv"
	"strings"
)

// envVar binds one environment variable to the field it sets.
type envVar struct {
	key string
	set func(c *Config, raw string) error
}

func str(dst func(*Config) *string) func(*Config, string) error {
	return func(c *Config, raw string) error {
		*dst(c) = raw
		return nil
	}
}

var environment = []envVar{
	{"ENV", str(func(c *Config) *string { return &c.Env })},
	{"HOST_ORIGIN", str(func(c *Config) *string { return &c.HostOrigin })},
	{"CORS_ORIGINS", func(c *Config, raw string) error {
		c.CORSOrigins = splitList(raw)
		return nil
	}},

	{"APP_SECRET", func(c *Config, raw string) error {
		v := AppSecretValue(raw)
		c.AppSecret.Value = &v
		return nil
	}},
	{"APP_SECRET_PATH", str(func(c *Config) *string { return &c.AppSecret.Path })},
	{"APP_SECRET_VERSION", str(func(c *Config) *string { return &c.AppSecret.Version })},

	{"DATABASE", str(func(c *Config) *string { return &c.Database.Database })},
	{"DATABASE_HOST", str(func(c *Config) *string { return &c.Database.Host })},
	{"DATABASE_USER", str(func(c *Config) *string { return &c.Database.User })},
	{"DATABASE_PASSWORD", str(func(c *Config) *string { return &c.Database.Password })},
	{"DATABASE_PORT", func(c *Config, raw string) error {
		port, err := strconv.ParseUint(raw, 10, 16)
		c.Database.Port = uint16(port)
		return err
	}},

	{"FILESERVER_VOLUME", str(func(c *Config) *string { return &c.Fileserver.Volume })},
	{"FILESERVER_URL_PREFIX", str(func(c *Config) *string { return &c.Fileserver.URLPrefix })},

	{"S3_ENDPOINT", str(func(c *Config) *string { return &c.S3.Endpoint })},
	{"S3_BUCKET", str(func(c *Config) *string { return &c.S3.Bucket })},
	{"S3_ACCESS_KEY", str(func(c *Config) *string { return &c.S3.AccessKey })},
	{"S3_SECRET_KEY", str(func(c *Config) *string { return &c.S3.SecretKey })},
	{"S3_USE_SSL", func(c *Config, raw string) error {
		b, err := strconv.ParseBool(raw)
		c.S3.UseSSL = b
		return err
	}},

	{"ADMIN_EMAIL", str(func(c *Config) *string { return &c.Admin.Email })},
	{"ADMIN_USERNAME", str(func(c *Config) *string { return &c.Admin.Username })},
	{"ADMIN_FIRST_NAME", str(func(c *Config) *string { return &c.Admin.FirstName })},
	{"ADMIN_LAST_NAME", str(func(c *Config) *string { return &c.Admin.LastName })},
	{"ADMIN_PASSWORD", func(c *Config, raw string) error {
		c.Admin.Password = AdminPassword(raw)
		return nil
	}},

	{"PAGINATION_DEFAULT_LIMIT", func(c *Config, raw string) error {
		limit, err := strconv.Atoi(raw)
		c.Pagination.DefaultLimit = limit
		return err
	}},
	{"SHOPPING_LIST_FONT_PATH", str(func(c *Config) *string { return &c.ShoppingList.FontPath })},
	{"SHOPPING_LIST_TITLE", str(func(c *Config) *string { return &c.ShoppingList.Title })},
}

func splitList(raw string) []string {
	var out []string
	for p := range strings.SplitSeq(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
