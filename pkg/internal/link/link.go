// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package link

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Build builds a link given its elements
func Build(elem ...string) (string, error) {
	if len(elem) == 0 {
		return "", nil
	}
	jointPath, err := url.JoinPath(elem[0], elem[1:]...)
	if err != nil {
		return "", fmt.Errorf("failed to join paths: %w", err)
	}
	if jointPath == "" {
		return ".", nil
	}
	unescaped, err := url.PathUnescape(jointPath)
	if err != nil {
		return "", fmt.Errorf("failed to unescape joint path: %w", err)
	}
	return strings.ReplaceAll(unescaped, " ", "%20"), nil
}

// IsAbsolute returns true for links with a scheme or a leading slash
func IsAbsolute(link string) bool {
	if strings.HasPrefix(link, "/") {
		return true
	}
	u, err := url.Parse(link)
	return err == nil && u.Scheme != ""
}

// Pretty rewrites a relative document link the way a site with pretty
// URLs serves it: the extension is dropped and the document becomes a
// directory. Section files are served as their parent directory.
// Fragments and queries are kept, leading .. segments too. Absolute
// links are returned as they are
func Pretty(link string, sectionFiles []string) string {
	if IsAbsolute(link) {
		return link
	}
	p, suffix := splitSuffix(link)
	p = path.Clean(p)
	if p == "." {
		return "/" + suffix
	}
	dir, file := path.Split(p)
	if file == ".." {
		return p + "/" + suffix
	}
	if isSectionFile(file, sectionFiles) {
		return dir + suffix
	}
	return strings.TrimSuffix(p, path.Ext(file)) + "/" + suffix
}

// Ugly rewrites a relative document link the way a site without pretty
// URLs serves it: documents become .html pages and section files
// become the index page of their directory. Absolute links are returned
// as they are
func Ugly(link string, sectionFiles []string) string {
	if IsAbsolute(link) {
		return link
	}
	p, suffix := splitSuffix(link)
	p = path.Clean(p)
	if p == "." {
		return "index.html" + suffix
	}
	dir, file := path.Split(p)
	if file == ".." {
		return p + "/index.html" + suffix
	}
	if isSectionFile(file, sectionFiles) {
		return dir + "index.html" + suffix
	}
	return strings.TrimSuffix(p, path.Ext(file)) + ".html" + suffix
}

func splitSuffix(link string) (string, string) {
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		return link[:i], link[i:]
	}
	return link, ""
}

func isSectionFile(name string, sectionFiles []string) bool {
	for _, s := range sectionFiles {
		if strings.EqualFold(name, s) {
			return true
		}
	}
	return name == "_index.md"
}
