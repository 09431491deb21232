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
Package gcf deploys a source directory to an existing cloud function

Steps

1. Get the cloud function, it must exist.
2. Zip the source directory in a temporary file, removed on every exit path.
3. Upload the zip:
  - when the function has a sourceArchiveUrl, overwrite that cloud storage object,
  - else get a signed upload url, PUT the zip and set sourceUploadUrl.
4. Patch the cloud function with the retrieved definition.
5. Optionally wait for the patch operation to be done.

A PUT answered with a non 2xx status code is logged, it does not stop the deployment.
The failure surfaces only if the patch fails.

No step is retried.
*/
package gcf
