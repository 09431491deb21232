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

import "fmt"

// Settings is the full set of deployment parameters.
// Required fields are checked in declaration order.
type Settings struct {
	ProjectID         string `env:"gcp_project" yaml:"gcp_project" valid:"isNotZeroValue"`
	Region            string `env:"gcp_region" yaml:"gcp_region" valid:"isNotZeroValue"`
	FunctionName      string `env:"cloud_function_name" yaml:"cloud_function_name" valid:"isNotZeroValue"`
	FunctionDirectory string `env:"cloud_function_directory" yaml:"cloud_function_directory" valid:"isNotZeroValue"`
	Credentials       string `env:"credentials" yaml:"credentials" valid:"isNotZeroValue"`
	DebugMode         string `env:"debug_mode" yaml:"debug_mode" env-default:"true"`
	WaitForOperation  string `env:"wait_for_operation" yaml:"wait_for_operation" env-default:"false"`
	DumpPath          string `env:"deployment_dump_path" yaml:"deployment_dump_path"`

	// set by Situate
	Debug bool `yaml:"-"`
	Wait  bool `yaml:"-"`
}

// Parent is the location hosting the function
func (settings Settings) Parent() string {
	return fmt.Sprintf("projects/%s/locations/%s", settings.ProjectID, settings.Region)
}

// FunctionPath is the fully qualified function resource name
func (settings Settings) FunctionPath() string {
	return fmt.Sprintf("%s/functions/%s", settings.Parent(), settings.FunctionName)
}
