// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the interaction dispatcher and the handlers it
routes to.

# Dispatcher

Route is the single entry point for every inbound interaction:

	dispatcher.Route(ctx, env)

It classifies the envelope by kind:

  - command: registry lookup by name; unregistered commands are logged and
    dropped
  - component: the custom id is parsed as a colon-delimited action token
    and dispatched on its routing key (role groups, poll, pollstats, quiz,
    quizgame, help); unknown keys are logged and dropped, help is a no-op
  - autocomplete: the focused field selects one of the index's seven lists

Route is the recovery boundary: handler errors and panics are logged and
converted to a best-effort ephemeral failure reply, never propagated.
Every dispatch, successful or not, emits exactly one audit panel to the
configured log channel after the handler completes; audit delivery failure
is only logged.

# Handler Types

Each handler is a struct created via a constructor taking its dependencies:

  - RoleHandler: role-toggle clicks, ephemeral confirmations
  - PollHandler: vote and stats clicks, panel re-rendering
  - QuizHandler: invitation and in-game clicks, scoped channel lifecycle

# Commands

Commands implement the Command interface and register by name. Builtins
covers the catalog lookups: faq, link, classroom.
*/
package handlers
