package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"shopquote/internal/cli/formatter"
	"shopquote/internal/domain"
	"shopquote/internal/pricing"
	"shopquote/internal/service"
)

// runEditor drives the interactive quote form. While composing a fresh
// quote every change autosaves the draft, so quitting mid-way and coming
// back resumes where the user left off.
func runEditor(app *App) error {
	ed := app.Editor
	ed.Open()

	for {
		fmt.Println(editorSummary(ed))

		saveLabel := "Save quote"
		clearLabel := "Clear draft"
		if ed.State() == service.EditingExisting {
			saveLabel = "Update quote"
			clearLabel = "Stop editing"
		}

		var action string
		menu := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("What next?").
				Options(
					huh.NewOption("Edit details (title, status, notes, tax)", "details"),
					huh.NewOption("Select customer", "customer"),
					huh.NewOption("Edit a line item", "edit-item"),
					huh.NewOption("Add a line item", "add-item"),
					huh.NewOption("Remove a line item", "remove-item"),
					huh.NewOption(saveLabel, "save"),
					huh.NewOption(clearLabel, "clear"),
					huh.NewOption("Quit", "quit"),
				).
				Value(&action),
		)).WithTheme(editorTheme()).WithShowHelp(false)

		if err := menu.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		switch action {
		case "details":
			if err := editDetails(ed); err != nil {
				return err
			}
		case "customer":
			if err := selectCustomer(app, ed); err != nil {
				return err
			}
		case "edit-item":
			if err := editItem(ed); err != nil {
				return err
			}
		case "add-item":
			it := ed.AddItem()
			if err := editItemFields(ed, it); err != nil {
				return err
			}
		case "remove-item":
			if err := removeItem(ed); err != nil {
				return err
			}
		case "save":
			q, err := ed.Save()
			if err != nil {
				if domain.IsValidation(err) {
					fmt.Println(formatter.StyleYellow.Render(err.Error()))
					continue
				}
				return err
			}
			fmt.Printf("Saved quote %s [%s]\n", q.Title, q.DisplayID())
			return nil
		case "clear":
			ed.Clear()
			fmt.Println("Draft cleared.")
		case "quit":
			return nil
		}
	}
}

func editorSummary(ed *service.Editor) string {
	heading := "New Quote"
	if ed.State() == service.EditingExisting {
		heading = "Edit Quote"
	}

	customerLine := formatter.Dim("no customer selected")
	if c, ok := ed.Customer(); ok {
		customerLine = c.Name
	}

	sum := ed.Totals()
	out := fmt.Sprintf("\n%s\n%s %s\nCustomer: %s\n",
		formatter.Header(heading),
		formatter.Bold(ed.Title()), formatter.StatusBadge(ed.Status()),
		customerLine)
	for i, it := range ed.Items() {
		out += fmt.Sprintf("  %d. %s | qty %g | %s | %s\n",
			i+1, displayName(it.Name), pricing.Finite(it.Qty),
			pricing.Money(it.Unit), pricing.Money(pricing.Finite(it.Qty)*pricing.Finite(it.Unit)))
	}
	out += fmt.Sprintf("Subtotal %s  Tax %s  Total %s\n",
		pricing.Money(sum.Subtotal), pricing.Money(sum.Tax), formatter.Bold(pricing.Money(sum.Total)))
	return out
}

func displayName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}

func editDetails(ed *service.Editor) error {
	title := ed.Title()
	notes := ed.Notes()
	status := ed.Status()
	tax := strconv.FormatFloat(ed.TaxRate(), 'g', -1, 64)

	statusOptions := make([]huh.Option[domain.QuoteStatus], 0, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		statusOptions = append(statusOptions, huh.NewOption(string(s), s))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Quote Title").Value(&title),
		huh.NewSelect[domain.QuoteStatus]().Title("Status").Options(statusOptions...).Value(&status),
		huh.NewText().Title("Notes").Value(&notes),
		huh.NewInput().Title("Tax Rate").Placeholder("0.09 = 9%").Validate(validateFloat).Value(&tax),
	)).WithTheme(editorTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	ed.SetTitle(title)
	ed.SetStatus(status)
	ed.SetNotes(notes)
	ed.SetTaxRate(parseFloatOr(tax, ed.TaxRate()))
	return nil
}

func selectCustomer(app *App, ed *service.Editor) error {
	customers := app.Customers.List()
	if len(customers) == 0 {
		fmt.Println("No customers yet. Add one with `shopquote customer add --name ...` first.")
		return nil
	}

	options := make([]huh.Option[string], 0, len(customers))
	for _, c := range customers {
		label := c.Name
		if c.Phone != "" {
			label = fmt.Sprintf("%s (%s)", c.Name, c.Phone)
		}
		options = append(options, huh.NewOption(label, c.ID))
	}

	id := ed.CustomerID()
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Customer").Options(options...).Value(&id),
	)).WithTheme(editorTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	ed.SetCustomerID(id)
	return nil
}

// pickItem runs a select over the current rows; ok is false when the user
// aborted or there are no rows.
func pickItem(ed *service.Editor, title string) (service.EditorItem, bool, error) {
	items := ed.Items()
	if len(items) == 0 {
		fmt.Println("No line items.")
		return service.EditorItem{}, false, nil
	}

	options := make([]huh.Option[string], 0, len(items))
	for _, it := range items {
		label := fmt.Sprintf("%s | qty %g | %s", displayName(it.Name), it.Qty, pricing.Money(it.Unit))
		options = append(options, huh.NewOption(label, it.UID))
	}

	var uid string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(options...).Value(&uid),
	)).WithTheme(editorTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return service.EditorItem{}, false, nil
		}
		return service.EditorItem{}, false, err
	}

	for _, it := range items {
		if it.UID == uid {
			return it, true, nil
		}
	}
	return service.EditorItem{}, false, nil
}

func editItem(ed *service.Editor) error {
	it, ok, err := pickItem(ed, "Which item?")
	if err != nil || !ok {
		return err
	}
	return editItemFields(ed, it)
}

func editItemFields(ed *service.Editor, it service.EditorItem) error {
	name := it.Name
	qty := strconv.FormatFloat(it.Qty, 'g', -1, 64)
	unit := strconv.FormatFloat(it.Unit, 'g', -1, 64)

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Item").Placeholder("Labor").Value(&name),
		huh.NewInput().Title("Qty").Validate(validateFloat).Value(&qty),
		huh.NewInput().Title("Unit Price").Validate(validateFloat).Value(&unit),
	)).WithTheme(editorTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	ed.UpdateItem(it.UID, name, parseFloatOr(qty, it.Qty), parseFloatOr(unit, it.Unit))
	return nil
}

func removeItem(ed *service.Editor) error {
	it, ok, err := pickItem(ed, "Remove which item?")
	if err != nil || !ok {
		return err
	}
	ed.RemoveItem(it.UID)
	return nil
}
