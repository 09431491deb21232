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
Command gcfdeploy deploys a local directory to an existing Google Cloud Function

Settings come from environment variables, or from a yaml file given with -settings.
Environment variables override file values.

	gcp_project               required
	gcp_region                required
	cloud_function_name       required
	cloud_function_directory  required
	credentials               required, service account key JSON
	debug_mode                optional, default true
	wait_for_operation        optional, default false
	deployment_dump_path      optional

Exit status

	0 deployed
	1 deploy failed
	2 configuration error
	3 cloud function directory does not exist
*/
package main
