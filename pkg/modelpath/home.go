/*
Copyright The Modelkeep Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package modelpath calculates filesystem paths to modelkeep's configuration, cache and data.
package modelpath

// This helper builds paths to modelkeep's configuration, cache and data paths.
const lp = lazypath("modelkeep")

// ModelsDir is the directory, relative to the data path, that holds downloaded artifacts.
const ModelsDir = "models"

// ConfigPath returns the path where modelkeep stores configuration.
func ConfigPath(elem ...string) string {
	return lp.configPath(elem...)
}

// CachePath returns the path where modelkeep stores cached objects.
func CachePath(elem ...string) string {
	return lp.cachePath(elem...)
}

// DataPath returns the path where modelkeep stores data.
func DataPath(elem ...string) string {
	return lp.dataPath(elem...)
}

// ArtifactRoot returns the single directory that holds every downloaded artifact.
//
// The result depends only on the platform and the environment, so repeated calls
// within a process return the same path as long as the environment is left alone.
func ArtifactRoot() string {
	return DataPath(ModelsDir)
}
