// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package solution

import (
	"errors"
	"testing"

	"github.com/BrunoReboul/gcfdeploy/utilities/erm"
)

func validSettings() Settings {
	return Settings{
		ProjectID:         "gcp_project",
		Region:            "gcp_region",
		FunctionName:      "cloud_function_name",
		FunctionDirectory: "schemas/project",
		Credentials:       `{"secret": "value"}`,
	}
}

func TestUnitValidate(t *testing.T) {
	var testCases = []struct {
		name      string
		clear     func(s *Settings)
		wantField string
	}{
		{"allPresent", func(s *Settings) {}, ""},
		{"missingProject", func(s *Settings) { s.ProjectID = "" }, "gcp_project"},
		{"missingRegion", func(s *Settings) { s.Region = "" }, "gcp_region"},
		{"missingFunctionName", func(s *Settings) { s.FunctionName = "" }, "cloud_function_name"},
		{"missingDirectory", func(s *Settings) { s.FunctionDirectory = "" }, "cloud_function_directory"},
		{"missingCredentials", func(s *Settings) { s.Credentials = "" }, "credentials"},
		{"missingRegionAndCredentials", func(s *Settings) { s.Region = ""; s.Credentials = "" }, "gcp_region"},
		{"missingAll", func(s *Settings) { *s = Settings{} }, "gcp_project"},
		{"debugModeIsOptional", func(s *Settings) { s.DebugMode = "" }, ""},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			settings := validSettings()
			tc.clear(&settings)
			err := settings.Validate()
			if tc.wantField == "" {
				if err != nil {
					t.Errorf("Want NO error, got %v", err)
				}
				return
			}
			var configurationError *erm.ConfigurationError
			if !errors.As(err, &configurationError) {
				t.Fatalf("Want a ConfigurationError, got %v", err)
			}
			want := "Missing `" + tc.wantField + "` config"
			if err.Error() != want {
				t.Errorf("want '%s' got '%s'", want, err.Error())
			}
		})
	}
}

func TestUnitPaths(t *testing.T) {
	settings := validSettings()
	if got, want := settings.Parent(), "projects/gcp_project/locations/gcp_region"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got, want := settings.FunctionPath(), "projects/gcp_project/locations/gcp_region/functions/cloud_function_name"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
