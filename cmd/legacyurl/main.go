/*
Copyright 2025 Trident Authors

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

// Command legacyurl parses URLs into their components and formats component
// records back into URLs.
//
//	legacyurl parse "http://user@example.com:8080/p?q=1#h"
//	legacyurl parse -o yaml -q < urls.txt
//	legacyurl format records.json
//	legacyurl normalize "HTTP://Example.COM\path"
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
