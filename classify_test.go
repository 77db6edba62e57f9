package main

import (
	"testing"
)

func classifyDeep(path string) Category {
	return Classify(path, path, false, DeepMode, DetectFileKind(path))
}

func TestClassifyComponentsSegment(t *testing.T) {
	cases := []string{
		"src/components/common/Avatar.tsx",
		"src/components/forms/Input.vue",
		"app/components/legacy.js",
	}

	for _, path := range cases {
		if category := classifyDeep(path); category != CategoryComponent {
			t.Errorf("Classify(%q) = %s, should be component", path, CategoryToString(category))
		}
	}
}

func TestClassifyHooks(t *testing.T) {
	cases := []string{
		"src/hooks/auth.ts",
		"src/shared/useFetch.ts",
	}

	for _, path := range cases {
		if category := classifyDeep(path); category != CategoryHook {
			t.Errorf("Classify(%q) = %s, should be hook", path, CategoryToString(category))
		}
	}
}

func TestClassifyHookNameNeedsUpperCase(t *testing.T) {
	// "user.ts" must not become a hook through its "use" prefix.
	if category := classifyDeep("src/models/user.ts"); category == CategoryHook {
		t.Errorf("Classify(src/models/user.ts) = hook, 'use' prefix alone must not match")
	}
}

func TestClassifyComponentsBeatsHookName(t *testing.T) {
	// Rules are ordered: the components segment wins over hook naming.
	path := "src/components/useFancyButton.tsx"
	if category := classifyDeep(path); category != CategoryComponent {
		t.Errorf("Classify(%q) = %s, components segment should win", path, CategoryToString(category))
	}
}

func TestClassifyUtils(t *testing.T) {
	cases := []string{
		"src/utils/date.ts",
		"src/lib/http.ts",
	}

	for _, path := range cases {
		if category := classifyDeep(path); category != CategoryUtil {
			t.Errorf("Classify(%q) = %s, should be util", path, CategoryToString(category))
		}
	}
}

func TestClassifyStyles(t *testing.T) {
	cases := []string{
		"src/styles/main.scss",
		"src/pages/Home.module.css",
	}

	for _, path := range cases {
		if category := classifyDeep(path); category != CategoryStyle {
			t.Errorf("Classify(%q) = %s, should be style", path, CategoryToString(category))
		}
	}
}

func TestClassifyTypes(t *testing.T) {
	cases := []string{
		"src/types/user.ts",
		"src/models/api.d.ts",
	}

	for _, path := range cases {
		if category := classifyDeep(path); category != CategoryType {
			t.Errorf("Classify(%q) = %s, should be type", path, CategoryToString(category))
		}
	}
}

func TestClassifyFallbackUtil(t *testing.T) {
	if category := classifyDeep("src/misc/thing.ts"); category != CategoryUtil {
		t.Errorf("Classify(src/misc/thing.ts) = %s, should fall back to util", CategoryToString(category))
	}
}

func TestClassifyExternalWinsOverEverything(t *testing.T) {
	category := Classify("src/components/fake.tsx", "", true, DeepMode, ComponentFile)
	if category != CategoryExternal {
		t.Errorf("Classify(external) = %s, should be external", CategoryToString(category))
	}
}

func TestClassifySegmentsComeFromImportPath(t *testing.T) {
	// The import path decides the segment rules even when the resolved file
	// lives under a differently named directory.
	category := Classify("./utils/date", "/p/src/components/utils/date.ts", false, DeepMode, ScriptFile)
	if category != CategoryUtil {
		t.Errorf("Classify(./utils/date) = %s, should be util", CategoryToString(category))
	}

	category = Classify("./Avatar", "/p/src/components/Avatar.tsx", false, DeepMode, ComponentFile)
	if category == CategoryComponent {
		t.Errorf("Classify(./Avatar) matched the resolved path's components segment, should use import path segments")
	}
}

func TestClassifyExtensionRulesUseResolvedPath(t *testing.T) {
	// Extensionless specifiers still pick up style and declaration
	// extensions from the resolved file.
	category := Classify("./theme", "/p/src/theme.scss", false, DeepMode, StyleFile)
	if category != CategoryStyle {
		t.Errorf("Classify(./theme -> theme.scss) = %s, should be style", CategoryToString(category))
	}

	category = Classify("./globals", "/p/src/globals.d.ts", false, DeepMode, TypeDeclFile)
	if category != CategoryType {
		t.Errorf("Classify(./globals -> globals.d.ts) = %s, should be type", CategoryToString(category))
	}
}

func TestClassifySimpleMode(t *testing.T) {
	cases := map[string]Category{
		"src/components/Avatar.tsx": CategoryUtil,
		"src/hooks/useUser.ts":      CategoryUtil,
		"src/styles/main.scss":      CategoryStyle,
	}

	for path, expected := range cases {
		category := Classify(path, path, false, SimpleMode, DetectFileKind(path))
		if category != expected {
			t.Errorf("Classify(%q, simple) = %s, should be %s", path, CategoryToString(category), CategoryToString(expected))
		}
	}
}
