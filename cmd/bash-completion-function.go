package cmd

import "strings"

func newBashCompletionFunc(app App) string {
	var bashCompletionFunc = `
  __snip_please_become_methods() {
    COMPREPLY=( $(compgen -W "` + strings.Join(app.GetBecomeNames(), " ") + `" -- "$cur") )
  }
  __snip-please_custom_func() {
    case ${prev} in
        --become-method)
          __snip_please_become_methods
          return
          ;;
        *)
        ;;
    esac
  }`
	return bashCompletionFunc
}
