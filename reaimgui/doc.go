// Package reaimgui binds the functions exported by the ReaImGui REAPER
// extension. bindings.go is generated; regenerate it instead of editing it.
//
// Load the bindings once from the plugin's GetFunc entry point and keep the
// result for the lifetime of the plugin:
//
//	im := reaimgui.Load(host.FromGetFunc(getFunc))
//	if im.LoadedCount() < reaimgui.FunctionCount {
//		// The running extension is older than the header.
//	}
//
// Every method returns host.ErrNotLoaded when the running extension does not
// export the function.
package reaimgui

//go:generate go run .. generate --header ../testdata/reaper_imgui_functions.h --output bindings.go
