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

// Package deploycli runs one cloud function deployment from validated settings.
//
// Outcomes are nil, a *erm.ConfigurationError, erm.ErrCloudFunctionDirectoryNonExistent,
// or a *erm.DeployFailedError wrapping whatever went wrong once remote work started.
package deploycli
