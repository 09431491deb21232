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
Package erm error management

Typed errors returned by a deployment. Configuration and source directory errors are
reported as is, before any network call. Everything failing once networking begins is
collapsed into a DeployFailedError that keeps the original cause for debug logging.

Every error is classified with a containerd errdefs class, so callers may use
errdefs.IsInvalidArgument, errdefs.IsNotFound and so on.
*/
package erm
