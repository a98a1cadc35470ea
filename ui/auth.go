// Package ui holds the menu screens that surround a run: the login and
// signup forms, the level map, and the victory and death overlays.
package ui

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/devilrun/config"
	"github.com/milk9111/devilrun/store"
)

// The narrator greets returning runners the only way it knows how.
var welcomePhrases = []string{
	"Welcome back to failure, %s.",
	"Ah, the fool returns. Prepare for disappointment, %s.",
	"Glad you could stop wasting time elsewhere, %s.",
	"The game was waiting for you to fail, %s.",
	"Let the suffering begin, %s.",
}

func welcomeFor(username string) string {
	return fmt.Sprintf(welcomePhrases[rand.Intn(len(welcomePhrases))], username)
}

// AuthForm is the login/signup screen. It owns both field groups and toggles
// between them; a successful submit reports the user and a welcome line
// through OnSuccess.
type AuthForm struct {
	UI *ebitenui.UI

	OnSuccess func(user *store.User, welcome string)
	// OnToggle fires when the form switches between login and signup.
	OnToggle func(signup bool)

	store    *store.Store
	signup   bool
	errLabel *widget.Text
	title    *widget.Text
	toggle   *widget.Button
	submit   *widget.Button

	loginPanel  *widget.Container
	signupPanel *widget.Container

	loginUser *widget.TextInput
	loginPass *widget.TextInput

	signupUser    *widget.TextInput
	signupPass    *widget.TextInput
	signupConfirm *widget.TextInput
	signupName    *widget.TextInput
	signupDOB     *widget.TextInput

	titleFace  text.Face
	normalFace text.Face
}

// NewAuthForm builds the form in login mode.
func NewAuthForm(st *store.Store, onSuccess func(*store.User, string)) *AuthForm {
	f := &AuthForm{
		store:      st,
		OnSuccess:  onSuccess,
		titleFace:  face(34),
		normalFace: face(18),
	}
	f.build()
	f.setSignup(false)
	return f
}

func (f *AuthForm) input(placeholder string, secure bool) *widget.TextInput {
	opts := []widget.TextInputOpt{
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(360, 52),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     imageui.NewNineSliceColor(config.BackgroundColor),
			Disabled: imageui.NewNineSliceColor(config.PeachDark),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          config.White,
			Disabled:      config.PeachMed,
			Caret:         config.White,
			DisabledCaret: config.PeachMed,
		}),
		widget.TextInputOpts.Face(&f.normalFace),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(12)),
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			f.submitForm()
		}),
	}
	if secure {
		opts = append(opts, widget.TextInputOpts.Secure(true))
	}
	return widget.NewTextInput(opts...)
}

func (f *AuthForm) build() {
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(config.PeachMed),
		Hover:   imageui.NewNineSliceColor(config.AccentRed),
		Pressed: imageui.NewNineSliceColor(config.PeachDark),
	}
	btnText := &widget.ButtonTextColor{Idle: config.White}

	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(config.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(20)),
			widget.RowLayoutOpts.Spacing(18),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	f.title = widget.NewText(
		widget.TextOpts.Text("login", &f.titleFace, config.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	content.AddChild(f.title)

	fieldLayout := widget.NewRowLayout(
		widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		widget.RowLayoutOpts.Spacing(18),
	)

	f.loginUser = f.input("username", false)
	f.loginPass = f.input("password", true)
	f.loginPanel = widget.NewContainer(widget.ContainerOpts.Layout(fieldLayout))
	f.loginPanel.AddChild(f.loginUser)
	f.loginPanel.AddChild(f.loginPass)
	content.AddChild(f.loginPanel)

	f.signupUser = f.input("new username", false)
	f.signupPass = f.input("new password", true)
	f.signupConfirm = f.input("confirm password", true)
	f.signupName = f.input("full name", false)
	f.signupDOB = f.input("dob (YYYY-MM-DD)", false)
	f.signupPanel = widget.NewContainer(widget.ContainerOpts.Layout(widget.NewRowLayout(
		widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		widget.RowLayoutOpts.Spacing(18),
	)))
	f.signupPanel.AddChild(f.signupUser)
	f.signupPanel.AddChild(f.signupPass)
	f.signupPanel.AddChild(f.signupConfirm)
	f.signupPanel.AddChild(f.signupName)
	f.signupPanel.AddChild(f.signupDOB)
	content.AddChild(f.signupPanel)

	f.submit = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 56),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text("login", &f.normalFace, btnText),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			f.submitForm()
		}),
	)
	content.AddChild(f.submit)

	f.toggle = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 48),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text("SIGN UP", &f.normalFace, btnText),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			f.setSignup(!f.signup)
		}),
	)
	content.AddChild(f.toggle)

	f.errLabel = widget.NewText(
		widget.TextOpts.Text("", &f.normalFace, color.RGBA{R: 255, G: 90, B: 90, A: 255}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	content.AddChild(f.errLabel)

	root.AddChild(content)
	f.UI = &ebitenui.UI{Container: root}
}

func (f *AuthForm) setSignup(signup bool) {
	f.signup = signup
	f.errLabel.Label = ""
	title, toggleLabel, submitLabel := "login", "SIGN UP", "login"
	if signup {
		title, toggleLabel, submitLabel = "sign up", "LOG IN", "create account"
	}
	f.title.Label = title
	if t := f.toggle.Text(); t != nil {
		t.Label = toggleLabel
	}
	if t := f.submit.Text(); t != nil {
		t.Label = submitLabel
	}
	if signup {
		f.loginPanel.GetWidget().Visibility = widget.Visibility_Hide
		f.signupPanel.GetWidget().Visibility = widget.Visibility_Show
	} else {
		f.loginPanel.GetWidget().Visibility = widget.Visibility_Show
		f.signupPanel.GetWidget().Visibility = widget.Visibility_Hide
	}
	if f.OnToggle != nil {
		f.OnToggle(signup)
	}
}

// ShowLogin forces the form back to login mode, e.g. after account deletion.
func (f *AuthForm) ShowLogin() {
	if f.signup {
		f.setSignup(false)
	}
}

// SetError shows a message in the error line, e.g. after account deletion.
func (f *AuthForm) SetError(msg string) {
	f.errLabel.Label = msg
}

func (f *AuthForm) submitForm() {
	f.errLabel.Label = ""
	if f.signup {
		f.submitSignup()
	} else {
		f.submitLogin()
	}
}

func (f *AuthForm) submitLogin() {
	username := strings.TrimSpace(f.loginUser.GetText())
	password := strings.TrimSpace(f.loginPass.GetText())
	if username == "" || password == "" {
		f.errLabel.Label = "enter both fields."
		return
	}
	user, err := f.store.Authenticate(username, password)
	if errors.Is(err, store.ErrBadCredentials) {
		f.errLabel.Label = "bad credentials."
		return
	}
	if err != nil {
		f.errLabel.Label = err.Error()
		return
	}
	if f.OnSuccess != nil {
		f.OnSuccess(user, welcomeFor(user.Username))
	}
}

func (f *AuthForm) submitSignup() {
	username := strings.TrimSpace(f.signupUser.GetText())
	password := strings.TrimSpace(f.signupPass.GetText())
	confirm := strings.TrimSpace(f.signupConfirm.GetText())
	if username == "" || password == "" || confirm == "" {
		f.errLabel.Label = "fill required fields."
		return
	}
	if password != confirm {
		f.errLabel.Label = "passwords mismatch."
		return
	}
	user, err := f.store.CreateUser(
		username,
		password,
		strings.TrimSpace(f.signupName.GetText()),
		strings.TrimSpace(f.signupDOB.GetText()),
	)
	if err != nil {
		f.errLabel.Label = fmt.Sprintf("signup failed: %v", err)
		return
	}
	// Auto-login after signup so the runner lands straight on the map.
	if f.OnSuccess != nil {
		f.OnSuccess(user, "Account created! "+welcomeFor(user.Username))
	}
}

// Update advances the widget tree. Call once per frame while the form is the
// active screen.
func (f *AuthForm) Update() {
	f.UI.Update()
}

// Draw renders the form over the whole screen.
func (f *AuthForm) Draw(screen *ebiten.Image) {
	f.UI.Draw(screen)
}
