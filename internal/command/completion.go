// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/sgdatago/internal/meta"
)

const bashCompletionScript = `# bash completion for sgdata
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_sgdata()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "config download gallery get head ls paths purge set unset completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --config-dir --data-dir --output -o --timeout --titles -t --tldr"
    local rows="--filter -f --sort -s"

    case "$cmd" in
        download)
            local opts="$common --endpoint --profile --region"
            ;;
        gallery)
            local opts="$common $rows --reuse"
            ;;
        head)
            local opts="$common $rows --rows -n"
            ;;
        purge)
            local opts="$common $rows --older-than"
            ;;
        config|ls|paths)
            local opts="$common $rows"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
            return 0
            ;;
        --data-dir|--config-dir)
            COMPREPLY=( $(compgen -o dirnames -- "$cur") )
            return 0
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    if [[ "$cmd" == "gallery" ]]; then
        COMPREPLY=( $(compgen -W "iris" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -F _sgdata sgdata
`

const zshCompletionScript = `#compdef sgdata

_sgdata() {
  local -a cmds
  cmds=(
    'config:list config values'
    'download:download a dataset into the cache'
    'gallery:run the gallery examples'
    'get:print a config value'
    'head:show the first rows of a cached dataset'
    'ls:list cached datasets'
    'paths:show the data and config locations'
    'purge:remove old cached datasets'
    'set:store a config value'
    'unset:remove a config value'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '--config-dir[config directory]:dir:_directories'
  '--data-dir[dataset cache directory]:dir:_directories'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '--timeout[network timeout]:duration'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  local -a rows
  rows=(
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-s --sort)'{-s,--sort}'[sort columns]:columns'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'sgdata commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    download)
      _arguments -C \
        $common \
        '--endpoint[S3 endpoint]:url' \
        '--profile[AWS profile]:profile' \
        '--region[AWS region]:region' \
        '1:url' \
        '2:file'
      ;;
    gallery)
      _arguments -C $common $rows '--reuse[only read the cached copy]' '1: :(iris)'
      ;;
    head)
      _arguments -C $common $rows '(-n --rows)'{-n,--rows}'[rows to show]:rows' '1:file:_files'
      ;;
    purge)
      _arguments -C $common $rows '--older-than[age in hours]:hours'
      ;;
    get|unset)
      _arguments -C $common '1:key'
      ;;
    set)
      _arguments -C $common '1:key' '2:value'
      ;;
    config|ls|paths)
      _arguments -C $common $rows
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _sgdata sgdata
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := stdout(cmd)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(w, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(w, bashCompletionScript)
		} else {
			fmt.Fprintln(stderr(cmd), "usage: sgdata completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "sgdata completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
