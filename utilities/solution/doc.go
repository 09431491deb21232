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

/*
Package solution deployment settings

Settings are read once per invocation, from the environment or from a YAML file whose
values are overridden by the environment. All keys are lower case, as the plugin receives them:

	gcp_project                required
	gcp_region                 required
	cloud_function_name        required
	cloud_function_directory   required, path to the source directory
	credentials                required, service account JSON key
	debug_mode                 optional, default true
	wait_for_operation         optional, default false
	deployment_dump_path       optional, YAML deployment record written after patch
*/
package solution
