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
Package gcfdeploy deploys a local source directory to an existing Google Cloud Function

## What

Zip a directory, upload it where the function expects its source, then patch the function so it rebuilds from the new archive.

- When the function already has a sourceArchiveUrl, the cloud storage object is overwritten
- Otherwise a signed upload url is requested and the zip is PUT there

## Layout

- cmd/gcfdeploy the command
- utilities/deploycli orchestration and outcome mapping
- utilities/gcf function fetch, upload and patch
- utilities/solution, validater, erm, ffo, aut, gcs, logging, deploy supporting packages
*/
package gcfdeploy
