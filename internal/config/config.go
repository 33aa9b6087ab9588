package config

import "time"

// Built-in defaults. These match the production CloudShare tenant.
const (
	DefaultBaseURL        = "https://use.cloudshare.com/api/v3"
	DefaultSubscriptionID = "SBPnwD_kw-0hN_O5bhUwKTVQ2"
	DefaultRegionID       = "RE0YOUV7_lTmgb0X8D1UjM3g2"
	DefaultProjectPrefix  = "test-NEXTGEN CyberLAB - "
	DefaultEnvNameSuffix  = " example environment"
	// DefaultEnvDescription is a template; {customer} is replaced with the
	// customer name.
	DefaultEnvDescription = "Example environment created for {customer} by the CyberLAB team!"
	DefaultConcurrency    = 1
	DefaultArchivePrefix  = "onboarding-reports/"
)

// Config is the complete tool configuration.
type Config struct {
	API         APIConfig         `yaml:"api"`
	Project     ProjectConfig     `yaml:"project"`
	Environment EnvironmentConfig `yaml:"environment"`
	Invitations InvitationConfig  `yaml:"invitations"`
	Report      ReportConfig      `yaml:"report"`

	// Credentials are never read from the file.
	Credentials Credentials `yaml:"-"`
}

// Credentials identify the API caller.
type Credentials struct {
	APIID  string
	APIKey string
}

// APIConfig configures the HTTP gateway.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout"`
}

// ProjectConfig configures project creation.
type ProjectConfig struct {
	SubscriptionID string `yaml:"subscription_id"`
	NamePrefix     string `yaml:"name_prefix"`
	ProjectType    int    `yaml:"project_type"`
}

// EnvironmentConfig configures the starter environment.
type EnvironmentConfig struct {
	RegionID            string `yaml:"region_id"`
	NameSuffix          string `yaml:"name_suffix"`
	DescriptionTemplate string `yaml:"description"`
	// OwnerEmail overrides the owner resolved from the caller's profile.
	OwnerEmail        string     `yaml:"owner_email"`
	AutomaticSnapshot bool       `yaml:"automatic_snapshot"`
	Cart              []CartItem `yaml:"cart"`
}

// CartItem is one template VM added to the environment.
type CartItem struct {
	Name               string   `yaml:"name"`
	Description        string   `yaml:"description"`
	TemplateVMID       string   `yaml:"template_vm_id"`
	ChocolateyPackages []string `yaml:"chocolatey_packages"`
}

// InvitationConfig configures the bulk invitation step.
type InvitationConfig struct {
	// Concurrency is the number of invitations in flight. 1 is sequential.
	Concurrency    int  `yaml:"concurrency"`
	SuppressEmails bool `yaml:"suppress_emails"`
}

// ReportConfig configures failure report output.
type ReportConfig struct {
	Archive ArchiveConfig `yaml:"archive"`
}

// ArchiveConfig uploads the JSON failure report to an S3-compatible bucket.
type ArchiveConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	Region   string `yaml:"region"`
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`

	// PathStyle addresses buckets as endpoint/bucket, as MinIO expects.
	PathStyle bool `yaml:"path_style"`

	AccessKey string `yaml:"-"`
	SecretKey string `yaml:"-"`
}

// DefaultCart is the starter VM set every new customer receives.
func DefaultCart() []CartItem {
	return []CartItem{
		{Name: "Windows Server 2022 Standard", Description: "Windows Server 2022 Standard\r\n", TemplateVMID: "VMQ8CMFMPg3qODIkjbyiIaQQ2"},
		{Name: "Ubuntu 22.04 LTS Desktop", Description: "Ubuntu 22.04 LTS Desktop", TemplateVMID: "VMCuJ5pfZ_5buGrUxy-X7UYw2"},
		{Name: "Kali Linux 2022", Description: "Kali Linux 2022", TemplateVMID: "VM4v4vMNJyot3DJgZk0Z9hYQ2"},
		{Name: "CentOS 8 Server", Description: "CentOS 8 Server", TemplateVMID: "VMir6RBYieEi0OvNCHsQ52_g2"},
	}
}

// Default returns a configuration with every field at its built-in value.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills zero-valued fields.
func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.Project.SubscriptionID == "" {
		c.Project.SubscriptionID = DefaultSubscriptionID
	}
	if c.Project.NamePrefix == "" {
		c.Project.NamePrefix = DefaultProjectPrefix
	}
	if c.Environment.RegionID == "" {
		c.Environment.RegionID = DefaultRegionID
	}
	if c.Environment.NameSuffix == "" {
		c.Environment.NameSuffix = DefaultEnvNameSuffix
	}
	if c.Environment.DescriptionTemplate == "" {
		c.Environment.DescriptionTemplate = DefaultEnvDescription
	}
	if len(c.Environment.Cart) == 0 {
		c.Environment.Cart = DefaultCart()
	}
	if c.Invitations.Concurrency == 0 {
		c.Invitations.Concurrency = DefaultConcurrency
	}
	if c.Report.Archive.Prefix == "" {
		c.Report.Archive.Prefix = DefaultArchivePrefix
	}
}
