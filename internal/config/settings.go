package config

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"strings"
)

// Setting keys of the general settings document.
const (
	SettingAPIURL = "url_api"
	SettingAPIKey = "api_key"
)

// Route names of the REST route table used by the client.
const (
	RouteAuth       = "auth"
	RouteUserInfo   = "userinfo"
	RouteCourses    = "courses"
	RouteCourseInfo = "courseinfo"
	RouteDownload   = "download"
)

var requiredRoutes = []string{RouteAuth, RouteUserInfo, RouteCourses, RouteCourseInfo, RouteDownload}

// Route is one entry of the REST route table.
type Route struct {
	URL string `json:"url"`
}

// Settings is the immutable pair of settings documents: general settings
// (flat key/value) and the REST route table. Route URLs are relative to
// the url_api setting.
type Settings struct {
	values map[string]string
	routes map[string]Route
}

// NewSettings constructs [Settings] from already decoded documents. The
// maps are copied.
func NewSettings(values map[string]string, routes map[string]Route) *Settings {
	s := &Settings{
		values: make(map[string]string, len(values)),
		routes: make(map[string]Route, len(routes)),
	}
	maps.Copy(s.values, values)
	maps.Copy(s.routes, routes)
	return s
}

// LoadSettings reads the general settings document and the route table
// from disk.
func LoadSettings(settingsPath, routesPath string) (*Settings, error) {
	var raw map[string]any
	if err := readJSONFile(settingsPath, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingSettings, err)
	}

	values := make(map[string]string, len(raw))
	for k, v := range raw {
		values[k] = fmt.Sprint(v)
	}

	var routes map[string]Route
	if err := readJSONFile(routesPath, &routes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingSettings, err)
	}

	return NewSettings(values, routes), nil
}

// Setting returns the value stored under key, or an empty string.
func (s *Settings) Setting(key string) string {
	return s.values[key]
}

// Route returns the absolute URL of the named route.
func (s *Settings) Route(name string) (string, error) {
	route, ok := s.routes[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}

	return strings.TrimRight(s.Setting(SettingAPIURL), "/") + route.URL, nil
}

// withSetting returns a copy of s with key overridden. Empty values leave
// s untouched.
func (s *Settings) withSetting(key, value string) *Settings {
	if value == "" {
		return s
	}

	values := maps.Clone(s.values)
	values[key] = value
	return &Settings{values: values, routes: s.routes}
}

func (s *Settings) validate() error {
	if s.Setting(SettingAPIURL) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidSettings, SettingAPIURL)
	}

	for _, name := range requiredRoutes {
		if _, ok := s.routes[name]; !ok {
			return fmt.Errorf("%w: route %q is missing", ErrInvalidSettings, name)
		}
	}

	return nil
}

func readJSONFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(v)
}
