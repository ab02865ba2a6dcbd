package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/forkcook/internal/conversation"
	"github.com/hammamikhairi/forkcook/internal/display"
	"github.com/hammamikhairi/forkcook/internal/domain"
	"github.com/hammamikhairi/forkcook/internal/engine"
	"github.com/hammamikhairi/forkcook/internal/logger"
	"github.com/hammamikhairi/forkcook/internal/recipe"
)

// User-facing notices for failed fetches.
const (
	searchFailed = "Something went wrong with the search!"
	recipeFailed = "Error processing recipe!"
)

// screen is the part of display.UI the app drives.
type screen interface {
	InputChan() <-chan string
	PrintChat(text string)
	PrintBlock(text string)
	PrintHint(text string)
	PrintUrgent(text string)
	SetStatus(s display.Status)
}

type cliApp struct {
	engine   *engine.Engine
	parser   domain.IntentParser
	notifier domain.Notifier
	log      *logger.Logger
	ui       screen
}

func (a *cliApp) run(ctx context.Context) {
	if err := a.engine.RestoreLikes(ctx); err != nil {
		a.log.Error("restoring likes: %v", err)
		a.notifier.NotifyUrgent(ctx, "Could not load your liked recipes.")
	}
	a.refreshStatus()
	a.ui.PrintChat("What would you like to cook? Try \"search pizza\".")

	uiCh := a.ui.InputChan()
	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		if !a.handleInput(ctx, input) {
			return
		}
	}
}

// handleInput runs one command. It reports false when the app should exit.
func (a *cliApp) handleInput(ctx context.Context, input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return true
	}

	intent, err := a.parser.Parse(ctx, input)
	if err != nil {
		a.log.Error("parsing input: %v", err)
		return true
	}
	a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)

	if intent.Type == domain.IntentQuit {
		a.ui.PrintChat("Happy cooking!")
		return false
	}
	a.handleIntent(ctx, intent)
	a.refreshStatus()
	return true
}

func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) {
	switch intent.Type {
	case domain.IntentHelp:
		a.ui.PrintBlock(conversation.Help)
	case domain.IntentSearch:
		a.search(ctx, intent.Payload)
	case domain.IntentNextPage:
		a.step(+1)
	case domain.IntentPrevPage:
		a.step(-1)
	case domain.IntentGoToPage:
		a.goToPage(intent.Payload)
	case domain.IntentOpenRecipe:
		a.open(ctx, intent.Payload)
	case domain.IntentShowRecipe:
		a.showRecipe()
	case domain.IntentIncrease:
		a.servings(a.engine.IncreaseServings)
	case domain.IntentDecrease:
		a.servings(a.engine.DecreaseServings)
	case domain.IntentAddToList:
		a.addToList()
	case domain.IntentShowList:
		a.ui.PrintBlock(display.RenderList(a.engine.ShoppingItems()))
	case domain.IntentRemoveItem:
		a.removeItem(intent.Payload)
	case domain.IntentSetCount:
		a.setCount(intent.Payload)
	case domain.IntentToggleLike:
		a.toggleLike(ctx)
	case domain.IntentShowLikes:
		a.ui.PrintBlock(display.RenderLikes(a.engine.Likes()))
	default:
		a.ui.PrintHint(fmt.Sprintf("I didn't catch %q. Type 'help' for commands.", intent.Payload))
	}
}

func (a *cliApp) refreshStatus() {
	s := a.engine.Status()
	a.ui.SetStatus(display.Status{
		Recipe:    s.RecipeTitle,
		Servings:  s.Servings,
		ListItems: s.ListItems,
		Likes:     s.Likes,
	})
}

// ── Search ───────────────────────────────────────────────────────

func (a *cliApp) search(ctx context.Context, query string) {
	a.ui.PrintHint("Searching...")
	if _, err := a.engine.Search(ctx, query); err != nil {
		a.log.Error("search: %v", err)
		a.notifier.NotifyUrgent(ctx, searchFailed)
		return
	}
	a.showPage()
}

func (a *cliApp) step(delta int) {
	page, err := a.engine.SearchPage()
	if err != nil {
		a.noSearch()
		return
	}
	target := page.Next
	if delta < 0 {
		target = page.Prev
	}
	if target == 0 {
		a.ui.PrintHint("No more pages that way.")
		return
	}
	if _, err := a.engine.GoToPage(target); err != nil {
		a.noSearch()
		return
	}
	a.showPage()
}

func (a *cliApp) goToPage(payload string) {
	n, err := strconv.Atoi(payload)
	if err != nil {
		a.ui.PrintHint("Page must be a number.")
		return
	}
	if _, err := a.engine.GoToPage(n); err != nil {
		a.noSearch()
		return
	}
	a.showPage()
}

func (a *cliApp) showPage() {
	page, err := a.engine.SearchPage()
	if err != nil {
		a.noSearch()
		return
	}
	a.ui.PrintBlock(display.RenderPage(page, a.engine.Query()))
}

func (a *cliApp) noSearch() {
	a.ui.PrintHint("Search for something first, e.g. \"search pasta\".")
}

// ── Recipe ───────────────────────────────────────────────────────

func (a *cliApp) open(ctx context.Context, ref string) {
	id := ref
	if strings.HasPrefix(ref, "#") {
		pos, err := strconv.Atoi(ref[1:])
		if err != nil {
			a.ui.PrintHint("Use #n with the number shown next to a result.")
			return
		}
		id, err = a.engine.ResultAt(pos)
		if errors.Is(err, domain.ErrNoSearch) {
			a.noSearch()
			return
		}
		if err != nil {
			a.ui.PrintHint(fmt.Sprintf("There is no result %s on this page.", ref))
			return
		}
	}

	r, err := a.engine.OpenRecipe(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.ui.PrintHint(fmt.Sprintf("No recipe with ID %s.", id))
		return
	case err != nil:
		a.log.Error("open recipe %s: %v", id, err)
		a.notifier.NotifyUrgent(ctx, recipeFailed)
		return
	}

	a.ui.PrintBlock(display.RenderRecipe(r, a.engine.IsLiked(r.ID)))
	if len(r.Issues) > 0 {
		a.ui.PrintHint(fmt.Sprintf("%d ingredient line(s) could not be read and are shown as written.", len(r.Issues)))
	}
}

func (a *cliApp) showRecipe() {
	r := a.engine.Recipe()
	if r == nil {
		a.noRecipe()
		return
	}
	a.ui.PrintBlock(display.RenderRecipe(r, a.engine.IsLiked(r.ID)))
}

func (a *cliApp) servings(update func() (*domain.Recipe, error)) {
	r, err := update()
	switch {
	case errors.Is(err, domain.ErrNoRecipe):
		a.noRecipe()
		return
	case errors.Is(err, domain.ErrServingFloor):
		a.ui.PrintHint(fmt.Sprintf("Can't go below %d serving.", recipe.MinServings))
		return
	case err != nil:
		a.log.Error("servings: %v", err)
		a.ui.PrintUrgent(recipeFailed)
		return
	}
	a.ui.PrintBlock(display.RenderRecipe(r, a.engine.IsLiked(r.ID)))
}

func (a *cliApp) noRecipe() {
	a.ui.PrintHint("Open a recipe first, e.g. \"open #1\".")
}

// ── Shopping list ────────────────────────────────────────────────

func (a *cliApp) addToList() {
	added, err := a.engine.AddRecipeToList()
	if err != nil {
		a.noRecipe()
		return
	}
	a.ui.PrintChat(fmt.Sprintf("Added %d items to your shopping list.", len(added)))
}

func (a *cliApp) removeItem(ref string) {
	if err := a.engine.DeleteListItem(ref); err != nil {
		a.ui.PrintHint(fmt.Sprintf("Can't remove %s: %v", ref, err))
		return
	}
	a.ui.PrintBlock(display.RenderList(a.engine.ShoppingItems()))
}

func (a *cliApp) setCount(payload string) {
	fields := strings.Fields(payload)
	if len(fields) != 2 {
		a.ui.PrintHint("Usage: count <item> <amount>")
		return
	}
	count, err := recipe.EvalQuantity(fields[1])
	if err != nil {
		a.ui.PrintHint(fmt.Sprintf("%q is not an amount.", fields[1]))
		return
	}
	if err := a.engine.UpdateListCount(fields[0], count); err != nil {
		a.ui.PrintHint(fmt.Sprintf("Can't update %s: %v", fields[0], err))
		return
	}
	a.ui.PrintBlock(display.RenderList(a.engine.ShoppingItems()))
}

// ── Likes ────────────────────────────────────────────────────────

func (a *cliApp) toggleLike(ctx context.Context) {
	liked, err := a.engine.ToggleLike(ctx)
	switch {
	case errors.Is(err, domain.ErrNoRecipe):
		a.noRecipe()
		return
	case err != nil:
		a.log.Error("toggle like: %v", err)
		a.notifier.NotifyUrgent(ctx, "Could not save your likes.")
		return
	}

	title := a.engine.Recipe().Title
	if liked {
		a.notifier.Notify(ctx, fmt.Sprintf("♥ Liked %s.", title))
	} else {
		a.notifier.Notify(ctx, fmt.Sprintf("Removed %s from your likes.", title))
	}
}
